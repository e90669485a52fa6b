package repositories

import (
	"strings"

	"github.com/volatiletech/null/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-folded substring pattern with LIKE wildcards
// escaped. Blank input yields "".
func likePattern(search string) string {
	search = strings.TrimSpace(search)
	if search == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
}

// searchClause ORs a case-insensitive LIKE over columns.
func searchClause(columns ...string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = "LOWER(" + col + `) LIKE ? ESCAPE '\'`
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

func repeatArg(v interface{}, n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = v
	}
	return args
}

func objectID(hex string) primitive.ObjectID {
	id, _ := primitive.ObjectIDFromHex(hex)
	return id
}

func optionalString(s string) null.String {
	return null.NewString(s, s != "")
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
