package redis

import (
	"fmt"
	"strconv"
	"strings"

	"context"

	"github.com/redis/rueidis"

	"github.com/ethanaturner/libretexts-pts/internal/db"
	"github.com/ethanaturner/libretexts-pts/internal/db/query"
)

// fuzzyMaxEdits is the bounded edit distance for fuzzy text matching.
// RediSearch expresses it by the number of '%' wrappers around a term.
const fuzzyMaxEdits = 2

// Search executes an FT.SEARCH for the given query tree.
func (s *Store) Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = db.DefaultCandidateLimit
	}

	args := []string{q.IndexName, Compile(q.Query)}

	if len(q.ReturnFields) > 0 {
		args = append(args, "RETURN", strconv.Itoa(len(q.ReturnFields)))
		args = append(args, q.ReturnFields...)
	}

	if q.WithScores {
		args = append(args, "WITHSCORES")
	}

	args = append(args,
		"LIMIT", strconv.Itoa(q.Offset), strconv.Itoa(limit),
		"DIALECT", "2",
	)

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	if q.WithScores {
		return parseScoredResult(raw)
	}
	return parsePlainResult(raw)
}

// TagValues returns the distinct values of a TAG field via FT.TAGVALS.
func (s *Store) TagValues(ctx context.Context, index, field string) ([]string, error) {
	cmd := s.b().Arbitrary("FT.TAGVALS").Args(index, field).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		if isRedisErr(err, "unknown index name") {
			return nil, db.ErrIndexNotFound
		}
		return nil, &db.Error{Op: db.OpTagValues, Err: err}
	}

	values := make([]string, 0, len(raw))
	for _, msg := range raw {
		v, err := msg.ToString()
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values, nil
}

// --- Result parsing ---

func parseScoredResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	entries := make([]db.SearchEntry, 0, total)
	// 3-stride: [total, key1, score1, fields1, key2, score2, fields2, ...]
	for i := 1; i+2 < len(raw); i += 3 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		scoreStr, err := raw[i+1].ToString()
		if err != nil {
			continue
		}
		score, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			continue
		}

		fields, err := raw[i+2].ToArray()
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{
			Key:    key,
			Score:  score,
			Fields: parseFieldPairs(fields),
		})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parsePlainResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	entries := make([]db.SearchEntry, 0, total)
	// 2-stride: [total, key1, fields1, key2, fields2, ...]
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{
			Key:    key,
			Fields: parseFieldPairs(fields),
		})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// --- Query compilation ---

// Compile translates a query.Node tree into FT.SEARCH query syntax.
func Compile(n query.Node) string {
	if query.IsAll(n) {
		return "*"
	}

	switch v := n.(type) {
	case query.Tag:
		return compileTag(v)
	case query.Text:
		return compileText(v)
	case query.And:
		parts := make([]string, 0, len(v.Children))
		for _, c := range v.Children {
			parts = append(parts, Compile(c))
		}
		return strings.Join(parts, " ")
	case query.Or:
		parts := make([]string, 0, len(v.Children))
		for _, c := range v.Children {
			parts = append(parts, Compile(c))
		}
		return "(" + strings.Join(parts, " | ") + ")"
	case query.Not:
		return "-(" + Compile(v.Child) + ")"
	default:
		return "*"
	}
}

func compileTag(t query.Tag) string {
	escaped := tagEscaper.Replace(t.Value)
	if t.Prefix {
		return fmt.Sprintf("@%s:{%s*}", t.Field, escaped)
	}
	return fmt.Sprintf("@%s:{%s}", t.Field, escaped)
}

func compileText(t query.Text) string {
	terms := make([]string, 0, 4)
	for _, tok := range strings.Fields(t.Term) {
		terms = append(terms, wrapTerm(escapeQuery(tok), t.Mode))
	}
	if len(terms) == 0 {
		return "*"
	}

	expr := fmt.Sprintf("@%s:(%s)", strings.Join(t.Fields, "|"), strings.Join(terms, " "))

	if t.Boost > 0 {
		return fmt.Sprintf("(%s) => { $weight: %s }",
			expr, strconv.FormatFloat(t.Boost, 'g', -1, 64))
	}
	return expr
}

func wrapTerm(term string, mode query.MatchMode) string {
	switch mode {
	case query.Fuzzy:
		pct := strings.Repeat("%", fuzzyMaxEdits)
		return pct + term + pct
	case query.Prefix:
		return term + "*"
	default: // Infix
		return "*" + term + "*"
	}
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)
