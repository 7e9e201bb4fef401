package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crm-backend/internal/database"
	"crm-backend/internal/database/models"
	"crm-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OrganizationData describes one tenant and everything created inside it
type OrganizationData struct {
	Name     string             `yaml:"name"`
	Slug     string             `yaml:"slug"`
	Settings SettingsData       `yaml:"settings,omitempty"`
	Profiles []ProfileData      `yaml:"profiles,omitempty"`
	Boards   []BoardData        `yaml:"boards,omitempty"`
	Products []ProductData      `yaml:"products,omitempty"`
	Labels   []LabelMappingData `yaml:"label_mappings,omitempty"`
}

type SettingsData struct {
	AutoCreateDeals    bool   `yaml:"auto_create_deals"`
	DefaultBoard       string `yaml:"default_board,omitempty"`
	InstagramPageID    string `yaml:"instagram_page_id,omitempty"`
	DefaultCountryCode string `yaml:"default_country_code,omitempty"`
	ChatwootAccountID  int64  `yaml:"chatwoot_account_id,omitempty"`
}

// ProfileData is a CRM user. ID must match the auth provider user id when the profile
// is going to log in; it is generated otherwise.
type ProfileData struct {
	ID       string `yaml:"id,omitempty"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
}

type BoardData struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Default     bool        `yaml:"default,omitempty"`
	Stages      []StageData `yaml:"stages"`
}

type StageData struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

type ProductData struct {
	Name        string `yaml:"name"`
	SKU         string `yaml:"sku,omitempty"`
	Description string `yaml:"description,omitempty"`
	Price       string `yaml:"price"`
}

// LabelMappingData maps a Chatwoot label onto a stage, addressed by board and stage name
type LabelMappingData struct {
	Label string `yaml:"label"`
	Board string `yaml:"board"`
	Stage string `yaml:"stage"`
}

// File is the layout of a seed YAML file
type File struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

// Summary counts the rows created by Apply; existing rows are left untouched
type Summary struct {
	Organizations int
	Profiles      int
	Boards        int
	Stages        int
	Products      int
	LabelMappings int
}

// Load reads a seed file, or every *.yaml/*.yml file below a directory
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return loadFile(path)
	}

	merged := &File{}
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml")) {
			return nil
		}
		file, err := loadFile(p)
		if err != nil {
			return err
		}
		merged.Organizations = append(merged.Organizations, file.Organizations...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func loadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &file, nil
}

// Validate checks references inside the file before anything is written
func (f *File) Validate() error {
	slugs := map[string]bool{}
	for _, org := range f.Organizations {
		slug := strings.ToLower(strings.TrimSpace(org.Slug))
		if org.Name == "" || slug == "" {
			return errors.New("organization name and slug are required")
		}
		if slugs[slug] {
			return fmt.Errorf("organization %s is declared twice", slug)
		}
		slugs[slug] = true

		stages := map[string]map[string]bool{}
		for _, board := range org.Boards {
			if board.Name == "" {
				return fmt.Errorf("organization %s: board name is required", slug)
			}
			if len(board.Stages) == 0 {
				return fmt.Errorf("organization %s: board %s has no stages", slug, board.Name)
			}
			stages[board.Name] = map[string]bool{}
			for _, stage := range board.Stages {
				stages[board.Name][stage.Name] = true
			}
		}
		if d := org.Settings.DefaultBoard; d != "" && stages[d] == nil {
			return fmt.Errorf("organization %s: default board %s is not declared", slug, d)
		}
		for _, label := range org.Labels {
			if label.Label == "" {
				return fmt.Errorf("organization %s: label is required", slug)
			}
			if !stages[label.Board][label.Stage] {
				return fmt.Errorf("organization %s: label %s points to unknown stage %s/%s", slug, label.Label, label.Board, label.Stage)
			}
		}
		for _, profile := range org.Profiles {
			if profile.Email == "" {
				return fmt.Errorf("organization %s: profile email is required", slug)
			}
			if profile.Role != "" && !models.Role(profile.Role).IsValid() {
				return fmt.Errorf("organization %s: invalid role %q for %s", slug, profile.Role, profile.Email)
			}
			if profile.ID != "" {
				if _, err := uuid.Parse(profile.ID); err != nil {
					return fmt.Errorf("organization %s: invalid profile id for %s: %w", slug, profile.Email, err)
				}
			}
		}
		for _, product := range org.Products {
			if product.Name == "" {
				return fmt.Errorf("organization %s: product name is required", slug)
			}
			if _, err := decimal.NewFromString(product.Price); err != nil {
				return fmt.Errorf("organization %s: invalid price for product %s: %w", slug, product.Name, err)
			}
		}
	}
	return nil
}

// ConnectWithRetry opens the database, waiting for Postgres to accept connections
func ConnectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: gormlogger.Silent}
	log := logger.New()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		lastErr = err
		if attempt%10 == 0 || attempt == maxAttempts {
			log.WithError(err).Warnf("Database not ready (%d/%d)", attempt, maxAttempts)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts: %w", maxAttempts, lastErr)
}

// Apply creates whatever the file declares and does not exist yet, inside one transaction
func Apply(db *gorm.DB, file *File) (*Summary, error) {
	summary := &Summary{}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, orgData := range file.Organizations {
			if err := applyOrganization(tx, orgData, summary); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func applyOrganization(tx *gorm.DB, orgData OrganizationData, summary *Summary) error {
	org, created, err := createOrganization(tx, orgData)
	if err != nil {
		return err
	}
	if created {
		summary.Organizations++
	}

	for _, profileData := range orgData.Profiles {
		_, created, err := createProfile(tx, org, profileData)
		if err != nil {
			return err
		}
		if created {
			summary.Profiles++
		}
	}

	boards := map[string]*models.Board{}
	for _, boardData := range orgData.Boards {
		board, created, stagesCreated, err := createBoard(tx, org, boardData)
		if err != nil {
			return err
		}
		if created {
			summary.Boards++
		}
		summary.Stages += stagesCreated
		boards[board.Name] = board
	}

	if name := orgData.Settings.DefaultBoard; name != "" && org.Settings.DefaultBoardID == nil {
		id := boards[name].ID
		org.Settings.DefaultBoardID = &id
		if err := tx.Model(org).Update("settings", org.Settings).Error; err != nil {
			return fmt.Errorf("failed to set default board of %s: %w", org.Slug, err)
		}
	}

	for _, productData := range orgData.Products {
		_, created, err := createProduct(tx, org, productData)
		if err != nil {
			return err
		}
		if created {
			summary.Products++
		}
	}

	for _, labelData := range orgData.Labels {
		created, err := createLabelMapping(tx, org, boards, labelData)
		if err != nil {
			return err
		}
		if created {
			summary.LabelMappings++
		}
	}
	return nil
}

func createOrganization(tx *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	slug := strings.ToLower(strings.TrimSpace(orgData.Slug))

	var org models.Organization
	err := tx.Where("slug = ?", slug).First(&org).Error
	if err == nil {
		return &org, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query organization: %w", err)
	}

	org = models.Organization{
		Name: orgData.Name,
		Slug: slug,
		Settings: models.OrganizationSettings{
			AutoCreateDeals:    orgData.Settings.AutoCreateDeals,
			InstagramPageID:    orgData.Settings.InstagramPageID,
			DefaultCountryCode: orgData.Settings.DefaultCountryCode,
			ChatwootAccountID:  orgData.Settings.ChatwootAccountID,
		},
	}
	if err := tx.Create(&org).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create organization %s: %w", slug, err)
	}
	return &org, true, nil
}

func createProfile(tx *gorm.DB, org *models.Organization, profileData ProfileData) (*models.Profile, bool, error) {
	email := strings.ToLower(strings.TrimSpace(profileData.Email))

	var profile models.Profile
	err := tx.Where("email = ?", email).First(&profile).Error
	if err == nil {
		if profile.OrganizationID != nil && *profile.OrganizationID != org.ID {
			return nil, false, fmt.Errorf("profile %s already belongs to another organization", email)
		}
		return &profile, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query profile: %w", err)
	}

	role := models.RoleSeller
	if profileData.Role != "" {
		role = models.Role(profileData.Role)
	}
	orgID := org.ID
	profile = models.Profile{
		OrganizationID: &orgID,
		Email:          email,
		FullName:       profileData.FullName,
		Role:           role,
		Active:         true,
	}
	if profileData.ID != "" {
		profile.ID = uuid.MustParse(profileData.ID)
	}
	if err := tx.Create(&profile).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create profile %s: %w", email, err)
	}
	return &profile, true, nil
}

// createBoard also appends the stages missing from an existing board
func createBoard(tx *gorm.DB, org *models.Organization, boardData BoardData) (*models.Board, bool, int, error) {
	var board models.Board
	created := false
	err := tx.Where("organization_id = ? AND name = ?", org.ID, boardData.Name).First(&board).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		board = models.Board{
			TenantModel: models.TenantModel{OrganizationID: org.ID},
			Name:        boardData.Name,
			Description: boardData.Description,
			IsDefault:   boardData.Default,
		}
		if err := tx.Create(&board).Error; err != nil {
			return nil, false, 0, fmt.Errorf("failed to create board %s: %w", boardData.Name, err)
		}
		created = true
	case err != nil:
		return nil, false, 0, fmt.Errorf("failed to query board: %w", err)
	}

	var existing []models.Stage
	if err := tx.Where("board_id = ?", board.ID).Order("position ASC").Find(&existing).Error; err != nil {
		return nil, false, 0, fmt.Errorf("failed to query stages: %w", err)
	}
	names := make(map[string]bool, len(existing))
	for _, stage := range existing {
		names[stage.Name] = true
	}

	stagesCreated := 0
	position := len(existing)
	for _, stageData := range boardData.Stages {
		if names[stageData.Name] {
			continue
		}
		stage := models.Stage{
			TenantModel: models.TenantModel{OrganizationID: org.ID},
			BoardID:     board.ID,
			Name:        stageData.Name,
			Position:    position,
			Color:       stageData.Color,
		}
		if err := tx.Create(&stage).Error; err != nil {
			return nil, false, 0, fmt.Errorf("failed to create stage %s: %w", stageData.Name, err)
		}
		existing = append(existing, stage)
		names[stage.Name] = true
		position++
		stagesCreated++
	}
	board.Stages = existing
	return &board, created, stagesCreated, nil
}

func createProduct(tx *gorm.DB, org *models.Organization, productData ProductData) (*models.Product, bool, error) {
	query := tx.Where("organization_id = ?", org.ID)
	if productData.SKU != "" {
		query = query.Where("sku = ?", productData.SKU)
	} else {
		query = query.Where("name = ?", productData.Name)
	}

	var product models.Product
	err := query.First(&product).Error
	if err == nil {
		return &product, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query product: %w", err)
	}

	price, _ := decimal.NewFromString(productData.Price)
	product = models.Product{
		OrganizationID: org.ID,
		Name:           productData.Name,
		SKU:            productData.SKU,
		Description:    productData.Description,
		Price:          price,
		Active:         true,
	}
	if err := tx.Create(&product).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, false, fmt.Errorf("product sku %s already exists", productData.SKU)
		}
		return nil, false, fmt.Errorf("failed to create product %s: %w", productData.Name, err)
	}
	return &product, true, nil
}

func createLabelMapping(tx *gorm.DB, org *models.Organization, boards map[string]*models.Board, labelData LabelMappingData) (bool, error) {
	label := strings.ToLower(strings.TrimSpace(labelData.Label))

	var stageID uuid.UUID
	if board := boards[labelData.Board]; board != nil {
		for _, stage := range board.Stages {
			if stage.Name == labelData.Stage {
				stageID = stage.ID
				break
			}
		}
	}
	if stageID == uuid.Nil {
		return false, fmt.Errorf("stage %s/%s not found for label %s", labelData.Board, labelData.Stage, label)
	}

	var mapping models.LabelMapping
	err := tx.Where("organization_id = ? AND chatwoot_label = ?", org.ID, label).First(&mapping).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query label mapping: %w", err)
	}

	mapping = models.LabelMapping{
		OrganizationID: org.ID,
		ChatwootLabel:  label,
		StageID:        stageID,
	}
	if err := tx.Create(&mapping).Error; err != nil {
		return false, fmt.Errorf("failed to create label mapping %s: %w", label, err)
	}
	return true, nil
}
