package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"easyshop/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductWriter interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// requiredHeaders must be present in the header row; the remaining columns
// (description, color, stock, featured, image_url) are optional.
var requiredHeaders = []string{"category_id", "name", "price"}

// CSVImporter reads product rows from CSV and creates them through a ProductWriter.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses every row and creates one product per row. It stops at the first
// invalid row or write failure and reports how many products were created.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, h := range requiredHeaders {
		if _, ok := index[h]; !ok {
			return 0, fmt.Errorf("missing column %q", h)
		}
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		if blank(record) {
			continue
		}
		line, _ := i.reader.FieldPos(0)

		p, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := i.productRepo.Create(ctx, p); err != nil {
			return imported, fmt.Errorf("line %d: create product %q: %w", line, p.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	p := domain.Product{
		Name:        pick(record, index, "name"),
		Description: pick(record, index, "description"),
		Color:       pick(record, index, "color"),
		ImageURL:    pick(record, index, "image_url"),
	}
	if p.Name == "" {
		return p, domain.Invalid("name is required")
	}

	catID, err := strconv.Atoi(pick(record, index, "category_id"))
	if err != nil || catID <= 0 {
		return p, domain.Invalid("category_id must be a positive integer")
	}
	p.CategoryID = catID

	price, err := decimal.NewFromString(pick(record, index, "price"))
	if err != nil || price.IsNegative() {
		return p, domain.Invalid("price must be a non-negative number")
	}
	p.Price = price

	if v := pick(record, index, "stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			return p, domain.Invalid("stock must be a non-negative integer")
		}
		p.Stock = stock
	}
	if v := pick(record, index, "featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return p, domain.Invalid("featured must be true or false")
		}
		p.Featured = featured
	}
	return p, nil
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
