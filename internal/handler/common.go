package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/payload"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/pkg/logutils"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

// splitValues accepts both repeated parameters and comma separated lists.
func splitValues(values []string) []string {
	out := lo.FlatMap(values, func(v string, _ int) []string {
		return strings.Split(v, ",")
	})
	out = lo.Map(out, func(v string, _ int) string { return strings.TrimSpace(v) })
	return lo.Uniq(lo.Compact(out))
}

// bindID reads the :id path segment, answering 400 when it is missing.
func bindID(c *gin.Context) (string, bool) {
	var uri payload.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return "", false
	}
	return uri.ID, true
}

// listRows answers a paged list of T narrowed by filter.
func listRows[T any](c *gin.Context, db *gorm.DB, filter func(*gorm.DB) *gorm.DB) {
	var page payload.ListReqQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	rows, count, err := query.List[T](c, db, filter, query.Paginate(page.PageIndex, page.PageSize))
	if err != nil {
		logutils.Log.Errorf("list rows: %v", err)
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, payload.ListResp[T]{Rows: rows, Count: count})
}

func getRow[T any](c *gin.Context, db *gorm.DB) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	row, err := query.Get[T](c, db, id)
	if err != nil {
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, row)
}

func updateRow[T any](c *gin.Context, db *gorm.DB, id string, fields map[string]any) {
	if len(fields) == 0 {
		resputil.BadRequestError(c, "nothing to update")
		return
	}
	row, err := query.Update[T](c, db, id, fields)
	if err != nil {
		logutils.Log.WithField("id", id).Errorf("update row: %v", err)
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, row)
}

func deleteRow[T any](c *gin.Context, db *gorm.DB) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := query.Delete[T](c, db, id); err != nil {
		logutils.Log.WithField("id", id).Errorf("delete row: %v", err)
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, nil)
}

// setIf copies a pointer field into an update map when it was sent.
func setIf[T any](fields map[string]any, column string, v *T) {
	if v != nil {
		fields[column] = *v
	}
}

// setDate stores a date field. An empty string clears the column.
func setDate(fields map[string]any, column string, v *string) bool {
	if v == nil {
		return true
	}
	if *v == "" {
		fields[column] = nil
		return true
	}
	t := viewmodel.ParseDate(*v)
	if t == nil {
		return false
	}
	fields[column] = *t
	return true
}
