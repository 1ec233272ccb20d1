package stats

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio-dashboard/internal/metrics"
)

// Panel holds whatever the fetches produced. Until LeetCode answers it stays loading.
type Panel struct {
	mu       sync.RWMutex
	leetcode *LeetCodeStats
	github   *GitHubProfile
}

func (p *Panel) LeetCode() (*LeetCodeStats, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.leetcode == nil {
		return nil, false
	}
	s := *p.leetcode
	return &s, true
}

func (p *Panel) GitHub() (*GitHubProfile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.github == nil {
		return nil, false
	}
	g := *p.github
	return &g, true
}

func (p *Panel) setLeetCode(s *LeetCodeStats) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.leetcode = s
}

func (p *Panel) setGitHub(g *GitHubProfile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.github = g
}

// Enricher runs both fetches once. Sources left nil are skipped.
type Enricher struct {
	GitHub       GitHubFetcher
	GitHubUser   string
	LeetCode     LeetCodeFetcher
	LeetCodeUser string
	Panel        *Panel

	// Feed, when set, gets the public repository count as the projects target.
	Feed *metrics.Feed
}

// Start launches the fetches and returns immediately. The returned channel closes
// once both have finished, whatever their outcome.
func (e *Enricher) Start(ctx context.Context) <-chan struct{} {
	var g errgroup.Group

	if e.GitHub != nil && e.GitHubUser != "" {
		g.Go(func() error {
			profile, err := e.GitHub.FetchProfile(ctx, e.GitHubUser)
			if err != nil {
				log.Printf("GitHub stats fetch failed: %v", err)
				return nil
			}
			log.Printf("GitHub reachable: %s has %d public repos", profile.Login, profile.PublicRepos)
			e.Panel.setGitHub(profile)
			if e.Feed != nil && profile.PublicRepos > 0 {
				e.Feed.Update("projects", profile.PublicRepos)
			}
			return nil
		})
	}

	if e.LeetCode != nil && e.LeetCodeUser != "" {
		g.Go(func() error {
			s, err := e.LeetCode.FetchStats(ctx, e.LeetCodeUser)
			if err != nil {
				log.Printf("LeetCode stats fetch failed: %v", err)
				return nil
			}
			e.Panel.setLeetCode(s)
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		g.Wait() //nolint:errcheck
		close(done)
	}()
	return done
}
