package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"runplay-store/internal/domain"
)

type GameWriter interface {
	Upsert(ctx context.Context, g domain.GameListing, position int) error
}

// CSVImporter reads game rows and upserts them in file order.
// Expected header: id,title,platform,category,base_price,discount_percent.
type CSVImporter struct {
	reader *csv.Reader
	repo   GameWriter
}

func NewCSVImporter(r io.Reader, repo GameWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader: csvr,
		repo:   repo,
	}
}

var requiredHeaders = []string{"id", "title", "base_price"}

// Run parses every row and upserts it. It stops at the first invalid row and
// reports how many rows were imported before it.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, h := range requiredHeaders {
		if _, ok := index[h]; !ok {
			return 0, fmt.Errorf("missing required column %q", h)
		}
	}

	seen := map[int]int{}
	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}
		if blank(record) {
			continue
		}

		g, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if prev, dup := seen[g.ID]; dup {
			return imported, fmt.Errorf("row %d: %w: %d already defined on row %d", line, domain.ErrDuplicateListing, g.ID, prev)
		}
		seen[g.ID] = line

		if err := i.repo.Upsert(ctx, g, imported); err != nil {
			return imported, fmt.Errorf("upsert game %d: %w", g.ID, err)
		}
		imported++
	}
	return imported, nil
}

func parseRow(record []string, index map[string]int) (domain.GameListing, error) {
	idStr := pick(record, index, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return domain.GameListing{}, fmt.Errorf("%w: id %q is not an integer", domain.ErrInvalidListing, idStr)
	}

	priceStr := pick(record, index, "base_price")
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return domain.GameListing{}, fmt.Errorf("%w: id=%d base_price %q: %v", domain.ErrInvalidListing, id, priceStr, err)
	}

	discount := 0
	if s := pick(record, index, "discount_percent"); s != "" {
		discount, err = strconv.Atoi(strings.TrimSuffix(s, "%"))
		if err != nil {
			return domain.GameListing{}, fmt.Errorf("%w: id=%d discount_percent %q", domain.ErrInvalidListing, id, s)
		}
	}

	g := domain.GameListing{
		ID:              id,
		Title:           pick(record, index, "title"),
		Platform:        pick(record, index, "platform"),
		Category:        pick(record, index, "category"),
		BasePrice:       price,
		DiscountPercent: discount,
	}
	if err := g.Validate(); err != nil {
		return domain.GameListing{}, err
	}
	return g, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
