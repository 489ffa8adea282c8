package main

import "github.com/karimnaderr/speech-to-text-backend/cmd/server/cmd"

func main() {
	cmd.Execute()
}
