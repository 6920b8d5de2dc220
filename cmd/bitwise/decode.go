package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bitwise-arcade/internal/bitfield"
	"github.com/vovakirdan/bitwise-arcade/internal/games/breakout"
)

var flagNoBoard bool

var decodeCmd = &cobra.Command{
	Use:   "decode <word>",
	Short: "Show the fields of a breakout state word",
	Long: `Decodes a breakout state word into its packed fields and draws the board
as text: '#' brick, '=' paddle, 'o' ball.

Examples:
  bitwise decode 0x0797daffffffffff
  bitwise decode 547146672795287551 --no-board`,
	Args: cobra.ExactArgs(1),
	Run:  runDecode,
}

func init() {
	decodeCmd.Flags().BoolVar(&flagNoBoard, "no-board", false, "Print fields only")
}

func runDecode(cmd *cobra.Command, args []string) {
	word, err := breakout.ParseWord(args[0])
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("word  %s\n\n", breakout.Word(word))
	fmt.Printf("  %-11s  %5s  %5s  %s\n", "Field", "Start", "Width", "Value")
	fmt.Printf("  %-11s  %5s  %5s  %s\n", "-----", "-----", "-----", "-----")
	for _, f := range breakout.Layout {
		v := bitfield.Get[uint64](word, f)
		if f == breakout.FieldBricks {
			fmt.Printf("  %-11s  %5d  %5d  0x%010x\n", f.Name, f.Start, f.Width, v)
			continue
		}
		fmt.Printf("  %-11s  %5d  %5d  %d\n", f.Name, f.Start, f.Width, v)
	}

	s := breakout.Decode(word)
	fmt.Println()
	fmt.Println(s)

	if !flagNoBoard {
		fmt.Println()
		fmt.Println(breakout.RenderASCII(s))
	}
}
