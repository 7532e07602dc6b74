package main

import (
	_ "time/tzdata"

	"github.com/Alijeyrad/psyassist_backend/cmd"
)

func main() {
	cmd.Execute()
}
