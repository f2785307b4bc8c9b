package commands

import (
	"fmt"

	prettyjson "github.com/hokaccha/go-prettyjson"
)

type result struct {
	Input  string      `json:"input"`
	Result interface{} `json:"result"`
}

func (c *cli) print(input string, value interface{}) error {
	if !c.asJSON {
		_, err := fmt.Fprintln(c.out, value)
		return err
	}

	f := prettyjson.NewFormatter()
	f.DisabledColor = !c.colorOut
	b, err := f.Marshal(result{Input: input, Result: value})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, string(b))
	return err
}
