package updater

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clock-app/internal/config"
	"clock-app/internal/logger"

	"github.com/hashicorp/go-version"
	"github.com/rs/zerolog"
)

const DefaultAPI = "https://api.github.com"

var (
	ErrBadRepoURL  = errors.New("invalid GitHub URL")
	ErrBadResponse = errors.New("invalid API response")
)

// Release запись из GitHub Releases API.
type Release struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Prerelease bool   `json:"prerelease"`
	HTMLURL    string `json:"html_url"`
	Body       string `json:"body"`
}

// Request параметры проверки из раздела Updates.
type Request struct {
	Channel string
	Source  string
}

func RequestFrom(s config.Settings) Request {
	return Request{Channel: s.UpdateChannel, Source: s.UpdateSource}
}

type Result struct {
	HasUpdate bool
	Current   string
	Latest    string
	URL       string
	Notes     string
	Err       error
}

type Checker struct {
	Client  *http.Client
	API     string
	RepoURL string
	Version string
	log     zerolog.Logger
}

func New(repoURL, current string) *Checker {
	return &Checker{
		Client:  &http.Client{Timeout: 10 * time.Second},
		API:     DefaultAPI,
		RepoURL: repoURL,
		Version: current,
		log:     logger.For("updater"),
	}
}

// Check ищет в релизах версию новее текущей в выбранном канале.
// Источник, отличный от GitHub, дает результат без обновления и без ошибки.
func (c *Checker) Check(ctx context.Context, req Request) Result {
	res := Result{Current: c.Version, Latest: c.Version}
	if !strings.EqualFold(strings.TrimSpace(req.Source), "github") {
		return res
	}

	repo, err := RepoFromURL(c.RepoURL)
	if err != nil {
		res.Err = err
		return res
	}
	res.URL = "https://github.com/" + repo + "/releases"

	releases, err := c.fetch(ctx, repo)
	if err != nil {
		res.Err = err
		c.log.Warn().Err(err).Str("repo", repo).Msg("update check failed")
		return res
	}

	for _, rel := range releases {
		if !MatchesChannel(rel, req.Channel) {
			continue
		}
		tag := strings.TrimPrefix(rel.TagName, "v")
		if !Newer(c.Version, tag) {
			continue
		}
		res.HasUpdate = true
		res.Latest = tag
		res.Notes = rel.Body
		if rel.HTMLURL != "" {
			res.URL = rel.HTMLURL
		}
		break
	}
	c.log.Debug().Bool("update", res.HasUpdate).Str("latest", res.Latest).Msg("update check done")
	return res
}

func (c *Checker) fetch(ctx context.Context, repo string) ([]Release, error) {
	url := strings.TrimRight(c.API, "/") + "/repos/" + repo + "/releases"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "Clock-App")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	var releases []Release
	if err := json.Unmarshal(data, &releases); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return releases, nil
}

// RepoFromURL достает owner/repo из адреса репозитория на GitHub.
func RepoFromURL(url string) (string, error) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	url = strings.TrimSuffix(url, ".git")
	_, path, ok := strings.Cut(url, "github.com/")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBadRepoURL, url)
	}
	owner, rest, ok := strings.Cut(strings.Trim(path, "/"), "/")
	name, _, _ := strings.Cut(rest, "/")
	if !ok || owner == "" || name == "" {
		return "", fmt.Errorf("%w: %q", ErrBadRepoURL, url)
	}
	return owner + "/" + name, nil
}

// MatchesChannel: Stable берет только релизы, Beta пре-релизы с "beta",
// Dev пре-релизы с "dev" или "pre-alpha". Неизвестный канал считается Stable.
func MatchesChannel(rel Release, channel string) bool {
	text := strings.ToLower(rel.TagName + " " + rel.Name)
	switch strings.ToLower(strings.TrimSpace(channel)) {
	case "beta":
		return rel.Prerelease && strings.Contains(text, "beta")
	case "dev":
		return rel.Prerelease && (strings.Contains(text, "dev") || strings.Contains(text, "pre-alpha"))
	}
	return !rel.Prerelease
}

// Newer сравнивает только числовую часть версий, суффиксы вида -dev не учитываются.
// Неразборчивая версия никогда не считается новее.
func Newer(current, latest string) bool {
	cur, err := version.NewVersion(current)
	if err != nil {
		return false
	}
	lat, err := version.NewVersion(latest)
	if err != nil {
		return false
	}
	return cur.Core().LessThan(lat.Core())
}
