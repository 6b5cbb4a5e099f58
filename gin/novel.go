package gin

import (
	"errors"
	"net/http"

	"github.com/fwojciec/novelfetch"
	"github.com/gin-gonic/gin"
)

// novelQuery is the optional chapter selection of a novel request.
type novelQuery struct {
	Chapters string `form:"chapters"`
	Start    int    `form:"start"`
	End      int    `form:"end"`
}

// filter returns the chapter filter the query selects, or nil when the
// query selects every chapter.
func (q novelQuery) filter() (*novelfetch.ChapterFilter, error) {
	numbers, err := novelfetch.ParseChapterNumbers(q.Chapters)
	if err != nil {
		return nil, err
	}
	if len(numbers) == 0 && q.Start == 0 && q.End == 0 {
		return nil, nil
	}

	f := &novelfetch.ChapterFilter{Numbers: numbers, Start: q.Start, End: q.End}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleGetNovel(c *gin.Context) {
	var q novelQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid query: " + err.Error()})
		return
	}

	filter, err := q.filter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": novelfetch.ErrorMessage(err)})
		return
	}

	novel, err := s.scraper.ScrapeNovel(c.Request.Context(), c.Param("novel_id"), filter)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Failed to scrape novel: " + errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, novel)
}

// errorDetail returns the message of an application error, or the error
// text of any other error.
func errorDetail(err error) string {
	var e *novelfetch.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
