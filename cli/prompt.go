package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

func (c *CLI) readLine(caption string) string {
	fmt.Fprint(c.out, caption)
	text, err := c.in.ReadString('\n')
	if err != nil && text == "" {
		c.eof = true
	}
	return strings.TrimSpace(text)
}

func (c *CLI) readInt(caption string) int {
	for !c.eof {
		text := c.readLine(caption)
		n, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a whole number.")
			continue
		}
		return n
	}
	return 0
}

func (c *CLI) readInt64(caption string) int64 {
	for !c.eof {
		text := c.readLine(caption)
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a whole number.")
			continue
		}
		return n
	}
	return 0
}

func (c *CLI) readFloat(caption string) float64 {
	for !c.eof {
		text := c.readLine(caption)
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a number.")
			continue
		}
		return f
	}
	return 0
}

// Optional readers: blank input means "keep the current value".

func (c *CLI) readOptionalString(caption string) mo.Option[string] {
	text := c.readLine(caption)
	if text == "" {
		return mo.None[string]()
	}
	return mo.Some(text)
}

func (c *CLI) readOptionalInt(caption string) mo.Option[int] {
	for !c.eof {
		text := c.readLine(caption)
		if text == "" {
			return mo.None[int]()
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a whole number or leave blank.")
			continue
		}
		return mo.Some(n)
	}
	return mo.None[int]()
}

func (c *CLI) readOptionalFloat(caption string) mo.Option[float64] {
	for !c.eof {
		text := c.readLine(caption)
		if text == "" {
			return mo.None[float64]()
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a number or leave blank.")
			continue
		}
		return mo.Some(f)
	}
	return mo.None[float64]()
}
