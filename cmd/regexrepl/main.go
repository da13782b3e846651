// Command regexrepl is an interactive loop: it reads a pattern, then reads
// test strings against it one at a time until a blank line, then asks for
// the next pattern.
package main

import (
	"bufio"
	"fmt"
	"os"

	"regexcore/regexlib"
)

func main() {
	rdr := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("pattern> ")
		pat, err := rdr.ReadString('\n')
		if err != nil {
			return
		}
		pat = trimNewline(pat)
		if pat == "" {
			continue
		}

		re, err := regexlib.Compile(pat)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}

		for {
			fmt.Print("  text> ")
			line, err := rdr.ReadString('\n')
			if err != nil {
				return
			}
			line = trimNewline(line)
			if line == "" {
				break
			}
			if re.Matches(line) {
				fmt.Println("  ACCEPT")
			} else {
				fmt.Println("  REJECT")
			}
		}
	}
}

func trimNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
