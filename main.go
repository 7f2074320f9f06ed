package main

import "gitlab.com/smartstart-platform/buz_ledger_api/cmd"

func main() {
	cmd.Execute()
}
