package main

import "rapifix_backend/internal/app"

func main() {
	app.Run()
}
