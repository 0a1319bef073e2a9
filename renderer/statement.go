package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/credit"
	md "github.com/nao1215/markdown"
)

// StatementMarkdown renders every account, followed by the list of people who owe
// something, if any.
func StatementMarkdown(s *credit.Statement) string {
	var b strings.Builder
	doc := md.NewMarkdown(&b)

	doc.H1("Balances and Dues")

	table := md.TableSet{Header: []string{"Name", "Balance", "Due"}}
	for _, a := range s.Accounts {
		table.Rows = append(table.Rows, []string{a.Name, a.Balance.String(), a.Due.String()})
	}
	doc.Table(table)

	out := doc.String()
	var dues strings.Builder
	ConditionalBlock(&dues, func(w io.Writer) bool {
		section := md.NewMarkdown(w)
		section.H2("Dues")
		owing := false
		for _, a := range s.Accounts {
			if a.Due.IsPositive() {
				owing = true
				section.PlainText(fmt.Sprintf("- %s owes %v", a.Name, a.Due))
			}
		}
		section.PlainText(fmt.Sprintf("Total due: %v", s.TotalDue()))
		io.WriteString(w, section.String())
		return owing
	})
	return out + "\n" + dues.String()
}
