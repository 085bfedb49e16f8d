package main

import (
	"github.com/joho/godotenv"

	"kitchen-guard/cmd"
)

func main() {
	_ = godotenv.Load()

	cmd.Execute()
}
