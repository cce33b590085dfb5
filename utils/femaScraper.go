package utils

import (
	"claimit/config"
	"claimit/database"
	"claimit/models"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

const femaDateLayout = "2006-01-02T15:04:05.000000Z"

const femaDetailURL = "https://www.fema.gov/disaster/"

// Map FEMA incident types to our internal types
var disasterTypeMap = map[string]string{
	"Flood":      models.DisasterFlood,
	"Hurricane":  models.DisasterHurricane,
	"Tornado":    models.DisasterTornado,
	"Fire":       models.DisasterWildfire,
	"Earthquake": models.DisasterEarthquake,
	"Other":      models.DisasterOther,
}

// Map FEMA declaration types to severity levels
var declarationSeverity = map[string]int{
	"DR": models.SeverityHigh,   // Major Disaster Declaration
	"EM": models.SeverityHigh,   // Emergency Declaration
	"FM": models.SeverityMedium, // Fire Management Assistance Declaration
	"FS": models.SeverityLow,    // Fire Suppression Authorization
}

// Map FEMA declaration types to display names
var declarationDisplay = map[string]string{
	"DR": "Major Disaster Declaration",
	"EM": "Emergency Declaration",
	"FM": "Fire Management Assistance Declaration",
	"FS": "Fire Suppression Authorization",
}

// femaDeclaration mirrors one record of the FEMA Open API response.
type femaDeclaration struct {
	DeclarationTitle  string      `json:"declarationTitle"`
	DesignatedArea    string      `json:"designatedArea"`
	State             string      `json:"state"`
	IncidentType      string      `json:"incidentType"`
	DeclarationType   string      `json:"declarationType"`
	IhProgramDeclared int         `json:"ihProgramDeclared"`
	IaProgramDeclared int         `json:"iaProgramDeclared"`
	PaProgramDeclared int         `json:"paProgramDeclared"`
	HmProgramDeclared int         `json:"hmProgramDeclared"`
	LastRefresh       string      `json:"lastRefresh"`
	DisasterNumber    json.Number `json:"disasterNumber"`
}

type femaResponse struct {
	DisasterDeclarationsSummaries []femaDeclaration `json:"DisasterDeclarationsSummaries"`
}

// SyncResult reports what one refresh did.
type SyncResult struct {
	Fetched  int `json:"fetched"`
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

// Serializes refreshes so two overlapping runs cannot interleave partial writes.
var syncMu sync.Mutex

// buildFeedURL assembles the OData query: newest declarations first, capped
// at limit, optionally filtered to a set of state codes.
func buildFeedURL(baseURL string, limit int, states []string) string {
	query := []string{fmt.Sprintf("$top=%d", limit)}

	if len(states) > 0 {
		preds := make([]string, 0, len(states))
		for _, s := range states {
			preds = append(preds, fmt.Sprintf("state eq '%s'", s))
		}
		filter := "(" + strings.Join(preds, " or ") + ")"
		query = append(query, "$filter="+url.QueryEscape(filter))
	}

	query = append(query, "$orderby="+url.QueryEscape("declarationDate desc"))

	return baseURL + "?" + strings.Join(query, "&")
}

// mapDeclaration converts one upstream record into the internal taxonomy.
// Unmapped incident types fall back to "other", unmapped declaration codes to
// the Unknown severity and label. A missing or malformed refresh timestamp is
// replaced with the processing time, never rejected.
func mapDeclaration(rec femaDeclaration) models.DisasterUpdate {
	disasterType, ok := disasterTypeMap[rec.IncidentType]
	if !ok {
		disasterType = models.DisasterOther
	}

	severity, ok := declarationSeverity[rec.DeclarationType]
	if !ok {
		severity = models.SeverityUnknown
	}

	display, ok := declarationDisplay[rec.DeclarationType]
	if !ok {
		display = "Unknown"
	}

	assistance := rec.IhProgramDeclared == 1 ||
		rec.IaProgramDeclared == 1 ||
		rec.PaProgramDeclared == 1 ||
		rec.HmProgramDeclared == 1

	refreshed := time.Now()
	if rec.LastRefresh != "" {
		if parsed, err := time.Parse(femaDateLayout, rec.LastRefresh); err == nil {
			refreshed = parsed
		}
	}

	detailURL := ""
	if rec.DisasterNumber.String() != "" {
		detailURL = femaDetailURL + rec.DisasterNumber.String()
	}

	location := rec.DesignatedArea
	if location == "" {
		location = rec.State
	}

	return models.DisasterUpdate{
		Title:               rec.DeclarationTitle,
		Location:            location,
		DisasterType:        disasterType,
		Severity:            severity,
		DeclarationType:     rec.DeclarationType,
		DeclarationDisplay:  display,
		AssistanceAvailable: assistance,
		Source:              "FEMA",
		URL:                 detailURL,
		LastRefreshed:       refreshed,
	}
}

// SyncDisasterDeclarations fetches the most recent declarations from the FEMA
// Open API and merges them into disaster_updates keyed by (title, location).
// Rows absent from the current fetch are never deleted, so a partial or failed
// fetch cannot blank prior data. A transport failure returns
// models.ErrUpstreamUnavailable and leaves the table untouched.
func SyncDisasterDeclarations(states []string) (SyncResult, error) {
	syncMu.Lock()
	defer syncMu.Unlock()

	var result SyncResult

	feedURL := buildFeedURL(config.AppConfig.FemaApiURL, config.AppConfig.FemaFetchLimit, states)
	log.Printf("[FEMA-SYNC] Fetching disaster declarations from: %s", feedURL)

	client := resty.New().SetTimeout(30 * time.Second)
	resp, err := client.R().Get(feedURL)
	if err != nil {
		log.Printf("[FEMA-SYNC] Fetch failed: %v", err)
		return result, fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}
	if !resp.IsSuccess() {
		log.Printf("[FEMA-SYNC] Fetch failed with status: %s", resp.Status())
		return result, fmt.Errorf("%w: status %s", models.ErrUpstreamUnavailable, resp.Status())
	}

	var feed femaResponse
	if err := json.Unmarshal(resp.Body(), &feed); err != nil {
		log.Printf("[FEMA-SYNC] Invalid feed payload: %v", err)
		return result, fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}

	result.Fetched = len(feed.DisasterDeclarationsSummaries)
	log.Printf("[FEMA-SYNC] Fetched %d declaration records", result.Fetched)

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		for _, rec := range feed.DisasterDeclarationsSummaries {
			mapped := mapDeclaration(rec)

			// Records without a usable natural key cannot be upserted.
			if mapped.Title == "" && mapped.Location == "" {
				result.Skipped++
				continue
			}

			var existing models.DisasterUpdate
			findErr := tx.Where("title = ? AND location = ?", mapped.Title, mapped.Location).First(&existing).Error
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				if createErr := tx.Create(&mapped).Error; createErr != nil {
					return createErr
				}
				result.Inserted++
				continue
			}
			if findErr != nil {
				return findErr
			}

			// Overwrite every mapped field in place, including zero values.
			updateErr := tx.Model(&existing).Updates(map[string]interface{}{
				"disaster_type":        mapped.DisasterType,
				"severity":             mapped.Severity,
				"declaration_type":     mapped.DeclarationType,
				"declaration_display":  mapped.DeclarationDisplay,
				"assistance_available": mapped.AssistanceAvailable,
				"source":               mapped.Source,
				"url":                  mapped.URL,
				"last_refreshed":       mapped.LastRefreshed,
			}).Error
			if updateErr != nil {
				return updateErr
			}
			result.Updated++
		}
		return nil
	})
	if err != nil {
		log.Printf("[FEMA-SYNC] Merge failed, rolled back: %v", err)
		return SyncResult{Fetched: result.Fetched}, err
	}

	log.Printf("[FEMA-SYNC] Sync completed: Fetched=%d, Inserted=%d, Updated=%d, Skipped=%d",
		result.Fetched, result.Inserted, result.Updated, result.Skipped)
	return result, nil
}
