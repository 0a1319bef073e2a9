// Package credit simulates a small retail credit ledger: a closed set of people with
// cash balances buy from a fixed catalog, either paying now or on credit, and later
// pay down what they owe.
//
// The core functionalities include:
//   - Catalog: the ordered list of products on sale, selected by 1-based index.
//   - People: persons keyed by their unique name, each with a balance and a due amount.
//   - Purchases: cash purchases debit the balance or are refused as a whole; credit
//     purchases add the price and its simple interest to the due amount.
//   - Settlement: a single-pass dialog to pay part or all of a person's due amount.
//   - Session: the menu loop owning people and catalog, reading and writing a Console.
//   - Statement: an ordered JSON snapshot of every account, queryable with JSONPath.
//
// All amounts are exact decimals and only rounded to cents when displayed, so that
// paying back exactly what is due always leaves a zero due amount.
//
// This package serves as the foundational logic for the `ccs` command-line tool.
package credit
