// Package persist translates between in-memory boards and the external
// field-map JSON format: per-tile and per-board field names, documented
// defaults for missing fields, and the generator's combined/per-board
// file layout.
package persist

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go-wolfrun/internal/board"
)

// ParseError wraps a failure to decode a board or board sequence from
// JSON, keeping the underlying encoding/json error reachable via
// errors.Unwrap.
type ParseError struct {
	Context string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("persist: %s: %v", e.Context, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CombinedFilename is the name of the file holding every generated
// board in one sequence.
const CombinedFilename = "levels.json"

// PerBoardFilename is the name of the single-board file for id.
func PerBoardFilename(id int) string {
	return fmt.Sprintf("level_%d.json", id)
}

type tileJSON struct {
	ID          string `json:"id"`
	GridCol     int    `json:"gridCol"`
	GridRow     int    `json:"gridRow"`
	GridColSpan int    `json:"gridColSpan"`
	GridRowSpan int    `json:"gridRowSpan"`
	UnitType    string `json:"unitType"`
	Direction   string `json:"direction"`
	Type        string `json:"type"`
}

type boardJSON struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Unlocked  bool       `json:"unlocked"`
	TimeLimit int        `json:"timeLimit"`
	Stars     int        `json:"stars"`
	Score     int        `json:"score"`
	Tiles     []tileJSON `json:"tiles"`
}

func tileToJSON(t board.Tile) tileJSON {
	return tileJSON{
		ID:          t.ID,
		GridCol:     t.Col,
		GridRow:     t.Row,
		GridColSpan: t.ColSpan,
		GridRowSpan: t.RowSpan,
		UnitType:    t.Unit.String(),
		Direction:   t.Direction.String(),
		Type:        t.Shape().String(),
	}
}

// tileFromJSON decodes a tile, supplying documented defaults for
// missing spans (1x1) and re-deriving the shape tag from the spans
// rather than trusting the persisted "type" field.
func tileFromJSON(t tileJSON) board.Tile {
	colSpan, rowSpan := t.GridColSpan, t.GridRowSpan
	if colSpan < 1 {
		colSpan = 1
	}
	if rowSpan < 1 {
		rowSpan = 1
	}
	return board.NewTile(
		t.ID,
		t.GridCol,
		t.GridRow,
		colSpan,
		rowSpan,
		board.UnitTypeFromString(t.UnitType),
		board.DirectionFromString(t.Direction),
	)
}

func boardToJSON(b board.Board) boardJSON {
	tiles := make([]tileJSON, len(b.Tiles))
	for i, t := range b.Tiles {
		tiles[i] = tileToJSON(t)
	}
	return boardJSON{
		ID:        b.ID,
		Name:      b.Name,
		Type:      b.Type,
		Unlocked:  b.Unlocked,
		TimeLimit: b.TimeLimit,
		Stars:     b.Stars,
		Score:     b.Score,
		Tiles:     tiles,
	}
}

func boardFromJSON(j boardJSON) board.Board {
	tiles := make([]board.Tile, len(j.Tiles))
	for i, t := range j.Tiles {
		tiles[i] = tileFromJSON(t)
	}
	return board.Board{
		ID:        j.ID,
		Name:      j.Name,
		Type:      j.Type,
		TimeLimit: j.TimeLimit,
		Unlocked:  j.Unlocked,
		Stars:     j.Stars,
		Score:     j.Score,
		GridSize:  board.DefaultGridSize,
		Tiles:     tiles,
	}
}

// isArray reports whether the first non-whitespace byte of data opens
// a JSON array, to distinguish a bare board object from a
// single-element sequence of one.
func isArray(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// DecodeBoard parses a single board from either a bare object or a
// single-element array, per §6's "board file" contract. Unknown JSON
// fields are ignored by encoding/json's default decode behavior.
func DecodeBoard(data []byte) (board.Board, error) {
	if isArray(data) {
		var arr []boardJSON
		if err := json.Unmarshal(data, &arr); err != nil {
			return board.Board{}, &ParseError{Context: "decode board array", Err: err}
		}
		if len(arr) != 1 {
			return board.Board{}, &ParseError{Context: "decode board array", Err: fmt.Errorf("expected a single-element array, got %d elements", len(arr))}
		}
		return boardFromJSON(arr[0]), nil
	}

	var j boardJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return board.Board{}, &ParseError{Context: "decode board", Err: err}
	}
	return boardFromJSON(j), nil
}

// EncodeBoard emits a single board as a pretty-printed, 2-space
// indented bare JSON object.
func EncodeBoard(b board.Board) ([]byte, error) {
	return json.MarshalIndent(boardToJSON(b), "", "  ")
}

// EncodeBoardAsSequence emits a single board wrapped in a one-element
// array, the per-board file shape the generator writes to
// level_<id>.json.
func EncodeBoardAsSequence(b board.Board) ([]byte, error) {
	return json.MarshalIndent([]boardJSON{boardToJSON(b)}, "", "  ")
}

// DecodeBoards parses the combined levels.json sequence of boards.
func DecodeBoards(data []byte) ([]board.Board, error) {
	var arr []boardJSON
	if err := json.Unmarshal(data, &arr); err != nil {
		return nil, &ParseError{Context: "decode board sequence", Err: err}
	}
	out := make([]board.Board, len(arr))
	for i, j := range arr {
		out[i] = boardFromJSON(j)
	}
	return out, nil
}

// EncodeBoards emits the combined levels.json sequence.
func EncodeBoards(boards []board.Board) ([]byte, error) {
	arr := make([]boardJSON, len(boards))
	for i, b := range boards {
		arr[i] = boardToJSON(b)
	}
	return json.MarshalIndent(arr, "", "  ")
}
