package apiadapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"webfetch-api/core/domain"
	timeutil "webfetch-api/pkg/utils/time"
)

const (
	maxRepos  = 5
	maxEvents = 3
)

type gitHubUser struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Blog        string `json:"blog"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`
}

type gitHubRepo struct {
	Name        string `json:"name"`
	Fork        bool   `json:"fork"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
}

type gitHubEvent struct {
	Type string `json:"type"`
	Repo struct {
		Name string `json:"name"`
	} `json:"repo"`
}

// gitHubHandler serves github.com/<user> profile pages
type gitHubHandler struct {
	api     *Adapter
	baseURL string
}

func (h *gitHubHandler) matches(u *url.URL) bool {
	_, ok := domain.GitHubUsername(u)
	return ok
}

// fetch loads the profile, repositories and public events concurrently.
// Profile and repositories are required; events degrade to an empty list.
func (h *gitHubHandler) fetch(ctx context.Context, u *url.URL) (string, error) {
	username, _ := domain.GitHubUsername(u)
	base := strings.TrimRight(h.baseURL, "/") + "/users/" + url.PathEscape(username)

	headers := http.Header{}
	headers.Set("Accept", "application/vnd.github+json")

	var (
		wg      sync.WaitGroup
		profile branch[gitHubUser]
		repos   branch[[]gitHubRepo]
		events  branch[[]gitHubEvent]
	)

	spawn(&wg, &profile, func() (gitHubUser, error) {
		var user gitHubUser
		err := h.api.getJSON(ctx, "github", base, headers, &user)
		return user, err
	})
	spawn(&wg, &repos, func() ([]gitHubRepo, error) {
		var list []gitHubRepo
		err := h.api.getJSON(ctx, "github", fmt.Sprintf("%s/repos?sort=updated&per_page=%d", base, maxRepos), headers, &list)
		return list, err
	})
	spawn(&wg, &events, func() ([]gitHubEvent, error) {
		var list []gitHubEvent
		err := h.api.getJSON(ctx, "github", fmt.Sprintf("%s/events/public?per_page=%d", base, maxEvents), headers, &list)
		return list, err
	})
	wg.Wait()

	if !profile.ok() {
		return "", profile.err
	}
	if !repos.ok() {
		return "", repos.err
	}
	if !events.ok() {
		h.api.warn("GitHub events unavailable, continuing without activity", map[string]interface{}{
			"username": username,
			"error":    events.err.Error(),
		})
	}

	return formatGitHub(profile.value, repos.value, events.valueOr(nil)), nil
}

func formatGitHub(user gitHubUser, repos []gitHubRepo, events []gitHubEvent) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "GitHub Profile: %s\n", user.Login)
	writeField(&sb, "Name", user.Name)
	writeField(&sb, "Bio", user.Bio)
	writeField(&sb, "Company", user.Company)
	writeField(&sb, "Location", user.Location)
	writeField(&sb, "Blog", user.Blog)
	if user.CreatedAt != "" {
		writeField(&sb, "Member since", timeutil.NormalizeTimestamp(user.CreatedAt))
	}
	fmt.Fprintf(&sb, "Public repositories: %d\n", user.PublicRepos)
	fmt.Fprintf(&sb, "Followers: %d | Following: %d\n", user.Followers, user.Following)

	if len(repos) > 0 {
		sb.WriteString("\nRecent repositories:\n")
		for i, repo := range repos {
			if i >= maxRepos {
				break
			}
			name := repo.Name
			if repo.Fork {
				name += " (fork)"
			}
			fmt.Fprintf(&sb, "- %s\n", name)
			if repo.Description != "" {
				fmt.Fprintf(&sb, "  %s\n", repo.Description)
			}
			language := repo.Language
			if language == "" {
				language = "n/a"
			}
			fmt.Fprintf(&sb, "  Language: %s | Stars: %d | Forks: %d\n", language, repo.Stars, repo.Forks)
		}
	}

	if len(events) > 0 {
		sb.WriteString("\nRecent activity:\n")
		for i, event := range events {
			if i >= maxEvents {
				break
			}
			fmt.Fprintf(&sb, "- %s on %s\n", strings.TrimSuffix(event.Type, "Event"), event.Repo.Name)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func writeField(sb *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(sb, "%s: %s\n", label, value)
	}
}
