package server

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio-dashboard/internal/activity"
	"github.com/Zachkp/portfolio-dashboard/internal/contact"
	"github.com/Zachkp/portfolio-dashboard/internal/dashboard"
	"github.com/Zachkp/portfolio-dashboard/internal/metrics"
	"github.com/Zachkp/portfolio-dashboard/internal/portfolio"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page(c, stateFrom(c).Snapshot()))
}

// Tab switching returns the tab body plus the tab bar, swapped out of band.
func (s *Server) handleTab(c *gin.Context) {
	st := stateFrom(c)
	st.SetTab(dashboard.ParseTab(c.Param("tab")))
	c.HTML(http.StatusOK, "tab-swap.html", s.page(c, st.Snapshot()))
}

func (s *Server) handleActivity(c *gin.Context) {
	st := stateFrom(c)
	st.SetTimeRange(activity.ParseRange(c.Query("range")))
	c.HTML(http.StatusOK, "activity.html", s.page(c, st.Snapshot()))
}

func (s *Server) handleActivityJSON(c *gin.Context) {
	r := activity.ParseRange(c.DefaultQuery("range", string(activity.RangeYear)))
	c.JSON(http.StatusOK, gin.H{
		"range":   r,
		"caption": s.Activity.Caption(r),
		"bars":    s.Activity.Chart(r),
		"summary": s.Activity.Summarize(),
	})
}

func (s *Server) handleSkillsJSON(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"skills":       s.Catalog.Skills,
		"distribution": portfolio.Distribution(s.Catalog.Skills, s.Catalog.Categories),
	})
}

func (s *Server) handleLeetCode(c *gin.Context) {
	lc, ok := s.Panel.LeetCode()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"loading": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loading": false, "stats": lc})
}

func (s *Server) handleSelectProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Project not found"})
		return
	}

	st := stateFrom(c)
	if _, err := st.SelectProject(id); err != nil {
		if errors.Is(err, portfolio.ErrProjectNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Project not found"})
			return
		}
		log.Printf("Error selecting project %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Something went wrong"})
		return
	}
	c.HTML(http.StatusOK, "modal.html", s.page(c, st.Snapshot()))
}

// Close button and backdrop clicks both land here; the modal is swapped for nothing.
func (s *Server) handleClearSelection(c *gin.Context) {
	stateFrom(c).ClearSelection()
	c.Status(http.StatusOK)
}

func (s *Server) handleToggleTheme(c *gin.Context) {
	theme, err := s.Theme.Toggle(c.Request.Context(), visitorFrom(c))
	if err != nil {
		log.Printf("Error saving theme preference: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
		return
	}
	c.Header("HX-Refresh", "true")
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (s *Server) handleContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "contact-error.html", gin.H{"error": "Please fill in every field."})
		return
	}

	handoff, err := stateFrom(c).Contact().Submit(c.Request.Context(), form)
	if err != nil {
		var verr *contact.ValidationError
		switch {
		case errors.As(err, &verr):
			c.HTML(http.StatusUnprocessableEntity, "contact-error.html", gin.H{
				"error": "Please provide a valid " + verr.Field + ".",
			})
		case errors.Is(err, contact.ErrBusy):
			c.HTML(http.StatusConflict, "contact-error.html", gin.H{
				"error": "Your message is already on its way.",
			})
		default:
			log.Printf("Error delivering contact message: %v", err)
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
		}
		return
	}

	if handoff.URI != "" {
		c.Header("HX-Redirect", handoff.URI)
	}
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
		"mailto":  handoff.URI,
	})
}

func (s *Server) handleContactStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": stateFrom(c).Contact().Status()})
}

type metricsEvent struct {
	Step   int            `json:"step"`
	Steps  int            `json:"steps"`
	Values metrics.Values `json:"values"`
}

// handleMetricsStream animates the counters over SSE for as long as the client stays
// connected, restarting whenever the targets change.
func (s *Server) handleMetricsStream(c *gin.Context) {
	ctx := c.Request.Context()
	st := stateFrom(c)
	events := make(chan metricsEvent, 1)

	go func() {
		defer close(events)
		s.Animator.Run(ctx, s.Feed, func(step int, v metrics.Values) { //nolint:errcheck
			select {
			case events <- metricsEvent{Step: step, Steps: s.Animator.Steps, Values: v}:
			case <-ctx.Done():
			}
		})
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			st.SetMetrics(ev.Values)
			c.SSEvent("metrics", ev)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
