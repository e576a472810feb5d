package main

import "github.com/saadjs/healthlog/cmd/healthlog"

func main() {
	healthlog.Execute()
}
