package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/resume/internal/career"
)

// careerErrorText replaces the label when the duration cannot be computed.
const careerErrorText = "기간 계산 오류"

// careerView is what the templates need to fill the one label slot.
type careerView struct {
	Prefix string
	Label  string
	Failed bool
}

func (s *Server) careerView() careerView {
	v := careerView{Prefix: s.resume.Career.Prefix}
	label, err := s.career.Label()
	if err != nil {
		s.logger.Error("Failed to compute career duration",
			"start", s.career.Start().Format(career.DateLayout),
			"error", err)
		v.Label = careerErrorText
		v.Failed = true
		return v
	}
	v.Label = label
	return v
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"resume":   s.resume,
		"about":    s.about,
		"career":   s.careerView(),
		"banner":   s.banner,
		"projects": s.resume.Projects,
		"links":    s.resume.Links,
	})
}

func (s *Server) handleWork(c *gin.Context) {
	c.HTML(http.StatusOK, "entries.html", gin.H{
		"heading": "경력",
		"entries": s.resume.Work,
	})
}

func (s *Server) handleEducation(c *gin.Context) {
	c.HTML(http.StatusOK, "entries.html", gin.H{
		"heading": "학력",
		"entries": s.resume.Education,
	})
}

func (s *Server) handleCareerFragment(c *gin.Context) {
	c.HTML(http.StatusOK, "career.html", s.careerView())
}

type careerResponse struct {
	Start       string `json:"start"`
	Now         string `json:"now"`
	Years       int    `json:"years"`
	Months      int    `json:"months"`
	TotalMonths int    `json:"total_months"`
	Label       string `json:"label"`
}

func (s *Server) handleCareerJSON(c *gin.Context) {
	now := s.career.Now()
	d, err := career.Between(s.career.Start(), now)
	if err != nil {
		s.logger.Error("Failed to compute career duration", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, careerResponse{
		Start:       s.career.Start().Format(career.DateLayout),
		Now:         now.Format(career.DateLayout),
		Years:       d.Years,
		Months:      d.Months,
		TotalMonths: d.TotalMonths(),
		Label:       d.String(),
	})
}
