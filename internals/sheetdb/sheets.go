// file: internals/sheetdb/sheets.go
package sheetdb

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"generusku_backend/internals/configs"
)

// DB: store global, diisi Connect() saat boot (pola yang sama dengan
// koneksi database biasa).
var DB Store

// SheetsStore: implementasi Store di atas Google Sheets API v4.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64 // title (lower) → sheetId, untuk DeleteDimension
}

// Connect membuka service Sheets dan mengisi DB. Fatal bila kredensial salah,
// sama seperti gagal konek database.
func Connect() {
	log.Println("🔌 Koneksi ke Google Sheets...")

	ctx := context.Background()
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if configs.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(configs.GoogleCredentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		log.Fatalf("❌ Gagal konek Sheets: %v", err)
	}
	if configs.SpreadsheetID == "" {
		log.Fatalf("❌ SPREADSHEET_ID belum diset!")
	}

	DB = &SheetsStore{
		svc:           svc,
		spreadsheetID: configs.SpreadsheetID,
		sheetIDs:      map[string]int64{},
	}
	log.Println("✅ Sheets connected.")
}

// WarmUp membaca ringan di background supaya token & koneksi siap.
func WarmUp(table string) {
	go func() {
		if DB == nil {
			return
		}
		if _, err := DB.ReadAll(context.Background(), table); err != nil {
			log.Printf("warm-up read err: %v", err)
		}
	}()
}

func (s *SheetsStore) ReadAll(ctx context.Context, table string) ([]Record, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, table).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("baca %s: %w", table, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	headers := cellsToStrings(resp.Values[0])
	out := make([]Record, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		cells := cellsToStrings(row)
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				rec[h] = cells[i]
			} else {
				rec[h] = ""
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *SheetsStore) Append(ctx context.Context, table string, rec Record) error {
	headers, err := s.readHeaders(ctx, table)
	if err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{toIface(mapToHeaders(headers, rec))}}
	_, err = s.svc.Spreadsheets.Values.Append(s.spreadsheetID, table, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append %s: %w", table, err)
	}
	return nil
}

func (s *SheetsStore) UpdateAt(ctx context.Context, table string, pos int, rec Record) error {
	if pos < 2 {
		return fmt.Errorf("update %s: posisi %d bukan baris data", table, pos)
	}
	headers, err := s.readHeaders(ctx, table)
	if err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{toIface(mapToHeaders(headers, rec))}}
	rangeA1 := fmt.Sprintf("%s!A%d", table, pos)
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rangeA1, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s pos %d: %w", table, pos, err)
	}
	return nil
}

func (s *SheetsStore) DeleteAt(ctx context.Context, table string, pos int) error {
	if pos < 2 {
		return fmt.Errorf("delete %s: posisi %d bukan baris data", table, pos)
	}
	sheetID, err := s.sheetID(ctx, table)
	if err != nil {
		return err
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(pos - 1), // index API 0-based
					EndIndex:   int64(pos),
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete %s pos %d: %w", table, pos, err)
	}
	return nil
}

func (s *SheetsStore) readHeaders(ctx context.Context, table string) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, table+"!1:1").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("baca header %s: %w", table, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("tabel %s tidak punya header", table)
	}
	return cellsToStrings(resp.Values[0]), nil
}

func (s *SheetsStore) sheetID(ctx context.Context, table string) (int64, error) {
	s.mu.Lock()
	if id, ok := s.sheetIDs[strings.ToLower(table)]; ok {
		s.mu.Unlock()
		return id, nil
	}
	s.mu.Unlock()

	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("baca metadata spreadsheet: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sh := range meta.Sheets {
		if sh.Properties != nil {
			s.sheetIDs[strings.ToLower(sh.Properties.Title)] = sh.Properties.SheetId
		}
	}
	if id, ok := s.sheetIDs[strings.ToLower(table)]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("sheet %s tidak ditemukan", table)
}

func cellsToStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.TrimRight(fmt.Sprintf("%v", c), " ")
	}
	return out
}

func toIface(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
