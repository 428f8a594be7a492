package gin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fwojciec/sitebrief"
	"github.com/gin-gonic/gin"
)

// summarizeRequest is the JSON body accepted by POST /summarize.
type summarizeRequest struct {
	URL      string `json:"url"`
	Language string `json:"language"`
	Save     bool   `json:"save"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSummarize(c *gin.Context) {
	req, err := bindBriefRequest(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, err)
		return
	}

	brief, err := s.briefer.Brief(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":         brief.Markdown,
		"url":             brief.URL,
		"locale":          brief.Locale,
		"title":           brief.Extraction.Title,
		"owner":           brief.Extraction.Owner,
		"metaDescription": brief.Extraction.MetaDescription,
	})
}

// bindBriefRequest reads a summarize request from a JSON body or from form
// fields. The form's save field is true for "true", "on" or "1".
func bindBriefRequest(c *gin.Context) (*sitebrief.BriefRequest, error) {
	if c.ContentType() == gin.MIMEJSON {
		var body summarizeRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, sitebrief.Errorf(sitebrief.EINVALID, "invalid JSON body")
		}
		return &sitebrief.BriefRequest{URL: body.URL, Language: body.Language, Persist: body.Save}, nil
	}

	save := strings.ToLower(c.PostForm("save"))
	return &sitebrief.BriefRequest{
		URL:      c.PostForm("url"),
		Language: c.DefaultPostForm("language", string(sitebrief.DefaultLocale)),
		Persist:  save == "true" || save == "on" || save == "1",
	}, nil
}

func (s *Server) handleListSummaries(c *gin.Context) {
	var filter sitebrief.SummaryFilter
	if url := c.Query("url"); url != "" {
		filter.URL = &url
	}
	if code := c.Query("locale"); code != "" {
		locale := sitebrief.ParseLocale(code)
		filter.Locale = &locale
	}

	var err error
	if filter.Limit, err = queryInt(c, "limit", 20); err != nil {
		writeError(c, err)
		return
	}
	if filter.Offset, err = queryInt(c, "offset", 0); err != nil {
		writeError(c, err)
		return
	}

	summaries, err := s.summaries.FindSummaries(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

func (s *Server) handleGetSummary(c *gin.Context) {
	summary, err := s.summaries.FindSummaryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, sitebrief.Errorf(sitebrief.EINVALID, "%s must be a non-negative integer", name)
	}
	return n, nil
}
