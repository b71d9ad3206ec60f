package main

import "github.com/igalhaddad/concurrent-url-downloader/cmd"

func main() {
	cmd.Execute()
}
