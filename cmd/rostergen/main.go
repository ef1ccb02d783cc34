// Command rostergen writes a deterministic mock HR roster for a commercial
// bank.
package main

func main() {
	Execute()
}
