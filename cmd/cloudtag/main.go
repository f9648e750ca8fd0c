package main

import (
	"log"

	"github.com/brendoncarroll/cloudtag/pkg/cloudtagcmd"
)

func main() {
	if err := cloudtagcmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
