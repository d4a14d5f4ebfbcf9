package utils

import (
	"fmt"
	"log"

	"github.com/ttacon/chalk"
)

// Banner prints a highlighted line, used for process lifecycle events.
func Banner(format string, args ...interface{}) {
	log.Print(chalk.Green)
	log.Println(fmt.Sprintf(format, args...))
	log.Print(chalk.Reset)
}

// Warn prints a highlighted warning.
func Warn(format string, args ...interface{}) {
	log.Print(chalk.Yellow)
	log.Println("WARN: " + fmt.Sprintf(format, args...))
	log.Print(chalk.Reset)
}

// Fail prints a highlighted error.
func Fail(format string, args ...interface{}) {
	log.Print(chalk.Red)
	log.Println("ERROR: " + fmt.Sprintf(format, args...))
	log.Print(chalk.Reset)
}
