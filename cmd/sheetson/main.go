package main

func main() {
	SetupEnvironment()
	Execute()
}
