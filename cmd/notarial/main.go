// Comando notarial: genera el encabezado o la comparecencia de un protocolo, leído de
// PostgreSQL o de un archivo YAML.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
