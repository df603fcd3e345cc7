package roster

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aanand-mishra/student-roster/internal/types"
)

// EncodeSnapshot serialises the roster as a JSON array, one object per
// record, in roster order. An empty roster encodes as "[]".
func EncodeSnapshot(students []types.Student) (string, error) {
	if students == nil {
		students = []types.Student{}
	}
	b, err := json.Marshal(students)
	if err != nil {
		return "", fmt.Errorf("EncodeSnapshot: %w", err)
	}
	return string(b), nil
}

// DecodeSnapshot parses a snapshot written by EncodeSnapshot.
//
// It never fails: blank or malformed text yields an empty roster, and a
// record repeating an earlier id or roll number is dropped so the result
// always satisfies the roster invariants.
func DecodeSnapshot(snapshot string) []types.Student {
	return decodeSnapshot(snapshot, slog.Default())
}

func decodeSnapshot(snapshot string, log *slog.Logger) []types.Student {
	students := make([]types.Student, 0)
	if strings.TrimSpace(snapshot) == "" {
		return students
	}

	var decoded []types.Student
	if err := json.Unmarshal([]byte(snapshot), &decoded); err != nil {
		log.Warn("discarding malformed roster snapshot", slog.String("error", err.Error()))
		return students
	}

	ids := make(map[string]struct{}, len(decoded))
	rolls := make(map[string]struct{}, len(decoded))
	for _, s := range decoded {
		_, dupID := ids[s.ID]
		_, dupRoll := rolls[s.RollNumber]
		if s.ID == "" || dupID || dupRoll {
			log.Warn("dropping conflicting snapshot record",
				slog.String("id", s.ID),
				slog.String("rollno", s.RollNumber))
			continue
		}
		ids[s.ID] = struct{}{}
		rolls[s.RollNumber] = struct{}{}
		students = append(students, s)
	}

	return students
}
