package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/padel-live/models"
)

const CSVContentType = "text/csv; charset=utf-8"

const exportTimeLayout = "20060102T150405Z"

// Export object names as produced by UploadPairsCSV.
var exportNamePattern = regexp.MustCompile(`^pairs-\d{8}T\d{6}Z\.csv$`)

var pairsCSVHeader = []string{"pair_id", "player_1", "player_2", "pair", "seed", "club", "registered_at"}

type ExportResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Rows      int       `json:"rows"`
	CreatedAt time.Time `json:"created_at"`
}

type ExportService interface {
	WritePairsCSV(ctx context.Context, tournamentID int, token string, w io.Writer) error
	// UploadPairsCSV stores the CSV in object storage and returns its public URL.
	UploadPairsCSV(ctx context.Context, tournamentID int, token string) (*ExportResult, error)
	// DeleteExport removes an uploaded export. Only tournament editors may
	// delete.
	DeleteExport(ctx context.Context, tournamentID int, token string, name string) error
}

type exportService struct {
	tournaments TournamentService
	uploader    FileUploader
	clock       clockwork.Clock
}

// NewExportService accepts a nil uploader; uploads then fail with
// ErrExportsDisabled while downloads keep working.
func NewExportService(tournaments TournamentService, uploader FileUploader, clock clockwork.Clock) ExportService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &exportService{
		tournaments: tournaments,
		uploader:    uploader,
		clock:       clock,
	}
}

func (s *exportService) WritePairsCSV(ctx context.Context, tournamentID int, token string, w io.Writer) error {
	pairs, err := s.tournaments.ListPlayerPairs(ctx, tournamentID, token)
	if err != nil {
		return err
	}
	return writePairsCSV(w, pairs)
}

func (s *exportService) UploadPairsCSV(ctx context.Context, tournamentID int, token string) (*ExportResult, error) {
	if s.uploader == nil {
		return nil, ErrExportsDisabled
	}

	pairs, err := s.tournaments.ListPlayerPairs(ctx, tournamentID, token)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := writePairsCSV(&buf, pairs); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	key := exportKey(tournamentID, "pairs-"+now.Format(exportTimeLayout)+".csv")

	uploaded, err := s.uploader.Upload(ctx, key, CSVContentType, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to upload pairs export for tournament %d: %w", tournamentID, err)
	}

	return &ExportResult{
		Key:       uploaded.Key,
		URL:       uploaded.Location,
		Rows:      len(pairs),
		CreatedAt: now,
	}, nil
}

func (s *exportService) DeleteExport(ctx context.Context, tournamentID int, token string, name string) error {
	if s.uploader == nil {
		return ErrExportsDisabled
	}
	if token == "" {
		return ErrAuthenticationRequired
	}
	if !exportNamePattern.MatchString(name) {
		return &ValidationError{Fields: map[string]string{"name": "must be an export file name such as pairs-20260601T120000Z.csv"}}
	}

	t, err := s.tournaments.GetTournament(ctx, tournamentID, token)
	if err != nil {
		return err
	}
	if err := requireEditor(t); err != nil {
		return err
	}

	if err := s.uploader.Delete(ctx, exportKey(tournamentID, name)); err != nil {
		return fmt.Errorf("failed to delete export %s of tournament %d: %w", name, tournamentID, err)
	}
	return nil
}

func exportKey(tournamentID int, name string) string {
	return fmt.Sprintf("exports/tournaments/%d/%s", tournamentID, name)
}

func writePairsCSV(w io.Writer, pairs []models.PlayerPair) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(pairsCSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, p := range pairs {
		seed := ""
		if p.Seed != nil {
			seed = strconv.Itoa(*p.Seed)
		}
		club := ""
		if p.Club != nil {
			club = *p.Club
		}
		registered := ""
		if !p.CreatedAt.IsZero() {
			registered = p.CreatedAt.UTC().Format(time.RFC3339)
		}
		record := []string{
			strconv.Itoa(p.ID),
			p.Player1Name,
			p.Player2Name,
			p.DisplayName(),
			seed,
			club,
			registered,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row for pair %d: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
