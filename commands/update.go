package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/inconshreveable/go-update"
	"github.com/kardianos/osext"
)

const latestReleaseURL = "https://api.github.com/repos/pivotal-cf/pass-alert/releases/latest"

type UpdateCommand struct {
	ReleaseURL string `long:"release-url" env:"PASS_ALERT_RELEASE_URL" default:"https://api.github.com/repos/pivotal-cf/pass-alert/releases/latest" description:"GitHub API URL of the latest release" value-name:"URL"`
}

type gitHubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadUrl string `json:"browser_download_url"`
}

type gitHubRelease struct {
	TagName         string        `json:"tag_name"`
	TargetCommitish string        `json:"target_commitish"`
	Assets          []gitHubAsset `json:"assets"`
}

func (command *UpdateCommand) Execute(args []string) error {
	url := command.ReleaseURL
	if url == "" {
		url = latestReleaseURL
	}

	apiResponse, err := http.Get(url)
	if err != nil {
		return err
	}
	defer apiResponse.Body.Close()

	if apiResponse.StatusCode != http.StatusOK {
		return errors.New("Error fetching latest release: " + apiResponse.Status)
	}

	var release gitHubRelease
	if err := json.NewDecoder(apiResponse.Body).Decode(&release); err != nil {
		return err
	}

	latestVersion := fmt.Sprintf("%s (%s)", release.TagName, release.TargetCommitish)

	if version == latestVersion {
		fmt.Println("Already up to date.")
		return nil
	}

	assetName := fmt.Sprintf("pass-alert_%s", runtime.GOOS)

	var downloadUrl string
	for _, asset := range release.Assets {
		if asset.Name == assetName {
			downloadUrl = asset.BrowserDownloadUrl
			break
		}
	}
	if downloadUrl == "" {
		return errors.New("unable to update pass-alert for this OS")
	}

	fmt.Println("Downloading new pass-alert...")
	downloadResponse, err := http.Get(downloadUrl)
	if err != nil {
		return err
	}
	defer downloadResponse.Body.Close()

	if downloadResponse.StatusCode != http.StatusOK {
		return errors.New("Error downloading latest release: " + downloadResponse.Status)
	}

	exePath, err := osext.Executable()
	if err != nil {
		return err
	}

	err = update.Apply(downloadResponse.Body, update.Options{TargetPath: exePath})
	if err != nil {
		if rerr := update.RollbackError(err); rerr != nil {
			return fmt.Errorf("update failed and could not be rolled back: %s", rerr)
		}
		return err
	}

	fmt.Printf("Upgraded from %s to %s.\n", version, latestVersion)

	return nil
}
