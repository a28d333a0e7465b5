// Command ledgerctl prints account forests and pages of flattened account
// rows from a ledger snapshot.
package main

func main() {
	execute()
}
