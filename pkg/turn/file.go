package turn

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Write the penalty table to a file, one movement "from via to penalty" per line
func WritePenaltyFile(pt PenaltyTable, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(pt.AsString()); err != nil {
		return err
	}
	return writer.Flush()
}

// Return the table in the file format, sorted by movement
func (pt PenaltyTable) AsString() string {
	keys := make([]PenaltyKey, 0, len(pt))
	for key := range pt {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Via != keys[j].Via {
			return keys[i].Via < keys[j].Via
		}
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].To < keys[j].To
	})

	var sb strings.Builder
	sb.WriteString("# from via to penalty\n")
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf("%v %v %v %v\n", key.From, key.Via, key.To, pt[key]))
	}
	return sb.String()
}

// Read a penalty file
func ReadPenaltyFile(filename string) (PenaltyTable, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParsePenalties(string(file))
}

// Parse a string in the penalty file format
func ParsePenalties(penaltyString string) (PenaltyTable, error) {
	scanner := bufio.NewScanner(strings.NewReader(penaltyString))

	pt := make(PenaltyTable)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 || line[0] == '#' {
			// skip empty lines and comments
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("turn: line %v: expected 4 fields, got %v", lineNumber, len(fields))
		}
		var ids [3]int
		for i := range ids {
			id, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, fmt.Errorf("turn: line %v: %w", lineNumber, err)
			}
			ids[i] = id
		}
		penalty, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("turn: line %v: %w", lineNumber, err)
		}
		pt.Set(ids[0], ids[1], ids[2], penalty)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := pt.Validate(); err != nil {
		return nil, err
	}
	return pt, nil
}
