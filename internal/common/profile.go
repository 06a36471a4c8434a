package common

import (
	"fmt"
	"os"
	"path/filepath"

	"bank-ledger-go/internal/models"

	"gopkg.in/yaml.v2"
)

const (
	DefaultOrganisation = "Banking Management System"
	DefaultCurrency     = "Rs."
)

// LoadProfile reads the presentation profile used on receipts and
// reports. A missing file is fine; defaults apply.
func LoadProfile(profileFile string) (models.Profile, error) {
	profile := models.Profile{
		Organisation: DefaultOrganisation,
		Currency:     DefaultCurrency,
	}

	var profilePath string
	if filepath.IsAbs(profileFile) {
		profilePath = profileFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return profile, fmt.Errorf("failed to get working directory: %w", err)
		}
		profilePath = filepath.Join(wd, profileFile)
	}

	data, err := os.ReadFile(profilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return profile, nil
		}
		return profile, fmt.Errorf("unable to read %s: %w", profileFile, err)
	}

	var loaded models.Profile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return profile, fmt.Errorf("unable to parse %s: %w", profileFile, err)
	}

	if loaded.Organisation != "" {
		profile.Organisation = loaded.Organisation
	}
	if loaded.Currency != "" {
		profile.Currency = loaded.Currency
	}

	return profile, nil
}
