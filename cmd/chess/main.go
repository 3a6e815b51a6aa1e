// Command chess is a two-player terminal game over the rules engine. It
// reads moves as two square tokens ("e2 e4"), applies them, and announces
// check, checkmate and stalemate.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AprajitaMaan/CIs17C-Project2-BoardGame/internal/model"
)

func main() {
	fmt.Println("Welcome to the chess game!")
	fmt.Println("Players take turns moving one piece at a time.")
	fmt.Println("Enter moves as two squares, e.g. 'e2 e4'.")
	fmt.Println()

	in := bufio.NewScanner(os.Stdin)
	in.Split(bufio.ScanWords)

	for {
		playGame(in)

		fmt.Println("Play again? (Y/N)")
		if !strings.EqualFold(readToken(in), "y") {
			break
		}
		fmt.Println()
	}

	fmt.Println("Thanks for playing!")
}

func playGame(in *bufio.Scanner) {
	board := model.NewBoardState()
	printBoard(board)

	for {
		turn := board.Turn()
		fmt.Printf("It's %s's turn. Enter your move (e.g. 'e2 e4'):\n", turnName(turn))

		fromToken := readToken(in)
		toToken := readToken(in)
		if fromToken == "" || toToken == "" {
			return
		}

		from, okFrom := model.ParseCoordinate(fromToken)
		to, okTo := model.ParseCoordinate(toToken)
		if !okFrom || !okTo || !board.ApplyMove(from, to) {
			fmt.Println("That move is invalid, try again.")
			continue
		}

		printBoard(board)

		next := board.Turn()
		if mate, err := board.IsCheckmate(next); err == nil && mate {
			fmt.Printf("Checkmate! %s wins.\n", turnName(next.Opponent()))
			return
		}
		if stale, err := board.IsStalemate(next); err == nil && stale {
			fmt.Println("Stalemate! Neither player can make a legal move.")
			return
		}
		if inCheck, err := board.IsInCheck(next); err == nil && inCheck {
			fmt.Printf("%s is in check.\n", turnName(next))
		}
	}
}

func readToken(in *bufio.Scanner) string {
	if !in.Scan() {
		return ""
	}
	return in.Text()
}

func turnName(c model.Color) string {
	if c == model.White {
		return "White"
	}
	return "Black"
}

func printBoard(board *model.BoardState) {
	grid := board.Grid()
	fmt.Println("  a b c d e f g h")
	for row, rank := 0, 8; row < 8; row, rank = row+1, rank-1 {
		fmt.Printf("%d ", rank)
		for col := 0; col < 8; col++ {
			sym := grid[row][col]
			if sym == "" {
				sym = "."
			}
			fmt.Printf("%s ", sym)
		}
		fmt.Printf("%d\n", rank)
	}
	fmt.Println("  a b c d e f g h")
}
