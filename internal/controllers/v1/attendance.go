package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quran-branch-manager/backend/internal/httputil"
	"github.com/quran-branch-manager/backend/internal/models"
	"gorm.io/gorm/clause"
)

// AttendanceEditable represents a single attendance record as written
// by the user
type AttendanceEditable struct {
	ClassID   uint                    `json:"classId" example:"3"`
	StudentID uint                    `json:"studentId" example:"42"`
	Date      string                  `json:"date" example:"2024-09-18"`
	Status    models.AttendanceStatus `json:"status" example:"present"`
}

func (editable AttendanceEditable) model() models.Attendance {
	return models.Attendance{
		ClassID:   editable.ClassID,
		StudentID: editable.StudentID,
		Date:      editable.Date,
		Status:    editable.Status,
	}
}

type AttendanceResponse struct {
	Error *string            `json:"error"` // The error, if one occurred
	Data  *models.Attendance `json:"data"`  // The attendance record
}

type AttendanceListResponse struct {
	Error *string             `json:"error"` // The error, if one occurred
	Data  []models.Attendance `json:"data"`  // List of attendance records
}

type AttendanceQueryFilter struct {
	ClassID   uint   `form:"class"`   // Filter by class ID
	StudentID uint   `form:"student"` // Filter by student ID
	Date      string `form:"date"`    // Filter by session date (YYYY-MM-DD)
}

func (f AttendanceQueryFilter) model() models.Attendance {
	return models.Attendance{
		ClassID:   f.ClassID,
		StudentID: f.StudentID,
		Date:      f.Date,
	}
}

// RegisterAttendanceRoutes registers the routes for attendance records
// with the RouterGroup that is passed.
func RegisterAttendanceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAttendanceList)
	r.GET("", GetAttendance)
	r.PUT("", SetAttendance)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Attendance
// @Success		204
// @Router			/v1/attendance [options]
func OptionsAttendanceList(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		List attendance
// @Description	Returns attendance records for a class, student or session
// @Tags			Attendance
// @Produce		json
// @Success		200	{object}	AttendanceListResponse
// @Failure		400	{object}	AttendanceListResponse
// @Failure		500	{object}	AttendanceListResponse
// @Router			/v1/attendance [get]
// @Param			class	query	uint	false	"Filter by class ID"
// @Param			student	query	uint	false	"Filter by student ID"
// @Param			date	query	string	false	"Filter by session date (YYYY-MM-DD)"
func GetAttendance(c *gin.Context) {
	var filter AttendanceQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, AttendanceListResponse{Error: &s})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	var records []models.Attendance
	err := models.DB.Order("date DESC").Where(&where, queryFields...).Find(&records).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AttendanceListResponse{Data: records})
}

// @Summary		Record attendance
// @Description	Creates or updates the attendance record for a student in a class session
// @Tags			Attendance
// @Produce		json
// @Success		200			{object}	AttendanceResponse
// @Failure		400			{object}	AttendanceResponse
// @Failure		404			{object}	AttendanceResponse
// @Failure		500			{object}	AttendanceResponse
// @Param			attendance	body		AttendanceEditable	true	"Attendance record"
// @Router			/v1/attendance [put]
func SetAttendance(c *gin.Context) {
	var editable AttendanceEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceResponse{Error: &e})
		return
	}

	// Verify the references before writing
	err = models.DB.First(&models.Class{}, editable.ClassID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceResponse{Error: &e})
		return
	}

	err = models.DB.First(&models.Student{}, editable.StudentID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceResponse{Error: &e})
		return
	}

	attendance := editable.model()

	// Recording a session twice overwrites the status
	err = models.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&attendance).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AttendanceResponse{Data: &attendance})
}
