// Command loadorder manages plugin load order and activation state for
// Bethesda-style single-player RPGs.
package main

func main() {
	Execute()
}
