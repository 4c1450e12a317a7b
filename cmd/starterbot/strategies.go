package main

import (
	"fmt"

	"github.com/lox/starterbot/internal/strategy"
)

type StrategiesCmd struct{}

func (c *StrategiesCmd) Run() error {
	for _, name := range strategy.Names() {
		fmt.Printf("%-16s %s\n", name, strategy.Describe(name))
	}
	return nil
}
