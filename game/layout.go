package game

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	WallGlyph    = '%'
	FoodGlyph    = '.'
	CapsuleGlyph = 'o'
	PacmanGlyph  = 'P'
	GhostGlyph   = 'G'
	EmptyGlyph   = ' '
)

var ErrInvalidLayout = errors.New("invalid layout")

// Layout is the static part of a grid game: walls and starting positions.
type Layout struct {
	Width       int
	Height      int
	Walls       [][]bool // Indexed by [y][x]
	Food        []Position
	Capsules    []Position
	PacmanStart Position
	GhostStarts []Position
}

// ParseLayout reads a layout drawn with glyphs, one row per line.
func ParseLayout(text string) (*Layout, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidLayout)
	}

	l := &Layout{
		Width:  len(lines[0]),
		Height: len(lines),
		Walls:  make([][]bool, len(lines)),
	}
	pacmen := 0
	for y, line := range lines {
		if len(line) != l.Width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrInvalidLayout, y, len(line), l.Width)
		}
		l.Walls[y] = make([]bool, l.Width)
		for x, glyph := range []byte(line) {
			p := Position{X: x, Y: y}
			switch glyph {
			case WallGlyph:
				l.Walls[y][x] = true
			case FoodGlyph:
				l.Food = append(l.Food, p)
			case CapsuleGlyph:
				l.Capsules = append(l.Capsules, p)
			case PacmanGlyph:
				l.PacmanStart = p
				pacmen++
			case GhostGlyph:
				l.GhostStarts = append(l.GhostStarts, p)
			case EmptyGlyph:
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at (%d, %d)", ErrInvalidLayout, glyph, x, y)
			}
		}
	}
	if pacmen != 1 {
		return nil, fmt.Errorf("%w: expected exactly one pacman, found %d", ErrInvalidLayout, pacmen)
	}

	return l, nil
}

func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return ParseLayout(string(data))
}

// IsWall treats everything outside the grid as a wall
func (l *Layout) IsWall(p Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width || p.Y >= l.Height {
		return true
	}
	return l.Walls[p.Y][p.X]
}

// NumAgents counts pacman plus every ghost
func (l *Layout) NumAgents() int {
	return 1 + len(l.GhostStarts)
}

// String draws the layout as ParseLayout reads it
func (l *Layout) String() string {
	rows := make([][]byte, l.Height)
	for y := range rows {
		rows[y] = make([]byte, l.Width)
		for x := range rows[y] {
			if l.Walls[y][x] {
				rows[y][x] = WallGlyph
			} else {
				rows[y][x] = EmptyGlyph
			}
		}
	}
	for _, p := range l.Food {
		rows[p.Y][p.X] = FoodGlyph
	}
	for _, p := range l.Capsules {
		rows[p.Y][p.X] = CapsuleGlyph
	}
	rows[l.PacmanStart.Y][l.PacmanStart.X] = PacmanGlyph
	for _, p := range l.GhostStarts {
		rows[p.Y][p.X] = GhostGlyph
	}

	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
