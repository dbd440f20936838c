package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quran-branch-manager/backend/internal/httperror"
	"github.com/quran-branch-manager/backend/internal/httputil"
	"github.com/quran-branch-manager/backend/internal/models"
)

// ClassEditable represents all values for a class that can be updated
// by the user
type ClassEditable struct {
	Name      string     `json:"name" example:"حلقة الحفظ - صباحية"`
	ClassType string     `json:"classType" example:"memorization"`
	TeacherID *uint      `json:"teacherId" example:"7"`
	Schedule  string     `json:"schedule" example:"[{\"day\": \"Monday\", \"time\": \"After Asr\"}]"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Status    string     `json:"status" example:"active" default:"pending"`
	Capacity  int        `json:"capacity" example:"20"`
	Gender    string     `json:"gender" example:"kids" default:"all"`
}

func (editable ClassEditable) model() models.Class {
	return models.Class{
		Name:      editable.Name,
		ClassType: editable.ClassType,
		TeacherID: editable.TeacherID,
		Schedule:  editable.Schedule,
		StartDate: editable.StartDate,
		EndDate:   editable.EndDate,
		Status:    editable.Status,
		Capacity:  editable.Capacity,
		Gender:    editable.Gender,
	}
}

type ClassLinks struct {
	Self     string `json:"self" example:"https://example.com/v1/classes/3"`
	Students string `json:"students" example:"https://example.com/v1/classes/3/students"`
}

type Class struct {
	models.Class
	Links ClassLinks `json:"links"`
}

func newClass(c *gin.Context, model models.Class) Class {
	url := c.GetString(string(models.DBContextURL))

	return Class{
		Class: model,
		Links: ClassLinks{
			Self:     fmt.Sprintf("%s/v1/classes/%d", url, model.ID),
			Students: fmt.Sprintf("%s/v1/classes/%d/students", url, model.ID),
		},
	}
}

type ClassResponse struct {
	Error *string `json:"error"` // The error, if one occurred
	Data  *Class  `json:"data"`  // The class
}

type ClassListResponse struct {
	Error *string `json:"error"` // The error, if one occurred
	Data  []Class `json:"data"`  // List of classes
}

type ClassQueryFilter struct {
	Name      string `form:"name" filterField:"false"` // Fuzzy filter by name
	Status    string `form:"status"`                   // Filter by status: pending, active or completed
	Gender    string `form:"gender"`                   // Filter by gender: women, men, kids or all
	TeacherID uint   `form:"teacher" filterField:"false"`
}

func (f ClassQueryFilter) model() models.Class {
	return models.Class{
		Status: f.Status,
		Gender: f.Gender,
	}
}

// EnrollmentEditable is the body for enrolling a student in a class.
type EnrollmentEditable struct {
	StudentID uint `json:"studentId" example:"42"`
}

// RegisterClassRoutes registers the routes for classes with
// the RouterGroup that is passed.
func RegisterClassRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsClassList)
	r.GET("", GetClasses)
	r.POST("", CreateClass)

	r.OPTIONS("/:id", OptionsClassDetail)
	r.GET("/:id", GetClass)
	r.PATCH("/:id", UpdateClass)
	r.DELETE("/:id", DeleteClass)

	r.GET("/:id/students", GetClassStudents)
	r.POST("/:id/students", EnrollStudent)
	r.DELETE("/:id/students/:studentID", UnenrollStudent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Classes
// @Success		204
// @Router			/v1/classes [options]
func OptionsClassList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Classes
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the class"
// @Router			/v1/classes/{id} [options]
func OptionsClassDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Class{})
}

// @Summary		Create class
// @Description	Creates a new class
// @Tags			Classes
// @Produce		json
// @Success		201		{object}	ClassResponse
// @Failure		400		{object}	ClassResponse
// @Failure		404		{object}	ClassResponse
// @Failure		500		{object}	ClassResponse
// @Param			class	body		ClassEditable	true	"Class"
// @Router			/v1/classes [post]
func CreateClass(c *gin.Context) {
	var editable ClassEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClassResponse{Error: &e})
		return
	}

	class := editable.model()

	err = models.DB.Create(&class).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClassResponse{Error: &e})
		return
	}

	data := newClass(c, class)
	c.JSON(http.StatusCreated, ClassResponse{Data: &data})
}

// @Summary		List classes
// @Description	Returns a list of classes
// @Tags			Classes
// @Produce		json
// @Success		200	{object}	ClassListResponse
// @Failure		400	{object}	ClassListResponse
// @Failure		500	{object}	ClassListResponse
// @Router			/v1/classes [get]
// @Param			name	query	string	false	"Fuzzy filter by name"
// @Param			status	query	string	false	"Filter by status: pending, active or completed"
// @Param			gender	query	string	false	"Filter by gender: women, men, kids or all"
// @Param			teacher	query	uint	false	"Filter by teacher ID"
func GetClasses(c *gin.Context) {
	var filter ClassQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ClassListResponse{Error: &s})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.Order("name ASC").Where(&where, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	}

	if filter.TeacherID != 0 {
		q = q.Where("teacher_id = ?", filter.TeacherID)
	}

	var classes []models.Class
	err := q.Find(&classes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClassListResponse{Error: &e})
		return
	}

	data := make([]Class, 0, len(classes))
	for _, class := range classes {
		data = append(data, newClass(c, class))
	}

	c.JSON(http.StatusOK, ClassListResponse{Data: data})
}

// @Summary		Get class
// @Description	Returns a specific class
// @Tags			Classes
// @Produce		json
// @Success		200	{object}	ClassResponse
// @Failure		400	{object}	ClassResponse
// @Failure		404	{object}	ClassResponse
// @Failure		500	{object}	ClassResponse
// @Param			id	path		uint	true	"ID of the class"
// @Router			/v1/classes/{id} [get]
func GetClass(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), ClassResponse{Error: &e})
		return
	}

	var class models.Class
	err := models.DB.First(&class, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClassResponse{Error: &e})
		return
	}

	data := newClass(c, class)
	c.JSON(http.StatusOK, ClassResponse{Data: &data})
}

// @Summary		Update class
// @Description	Updates a class. Only values to be updated need to be specified.
// @Tags			Classes
// @Produce		json
// @Success		200		{object}	ClassResponse
// @Failure		400		{object}	ClassResponse
// @Failure		404		{object}	ClassResponse
// @Failure		500		{object}	ClassResponse
// @Param			id		path		uint			true	"ID of the class"
// @Param			class	body		ClassEditable	true	"Class"
// @Router			/v1/classes/{id} [patch]
func UpdateClass(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), ClassResponse{Error: &e})
		return
	}

	var class models.Class
	err := models.DB.First(&class, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClassResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ClassEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClassResponse{Error: &e})
		return
	}

	var data ClassEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClassResponse{Error: &e})
		return
	}

	// Verify the teacher reference before writing
	if data.TeacherID != nil {
		err = models.DB.First(&models.Teacher{}, *data.TeacherID).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ClassResponse{Error: &e})
			return
		}
	}

	err = models.DB.Model(&class).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClassResponse{Error: &e})
		return
	}

	d := newClass(c, class)
	c.JSON(http.StatusOK, ClassResponse{Data: &d})
}

// @Summary		Delete class
// @Description	Deletes a class
// @Tags			Classes
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the class"
// @Router			/v1/classes/{id} [delete]
func DeleteClass(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var class models.Class
	err := models.DB.First(&class, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&class).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get class students
// @Description	Returns the students enrolled in the class
// @Tags			Classes
// @Produce		json
// @Success		200	{object}	StudentListResponse
// @Failure		400	{object}	StudentListResponse
// @Failure		404	{object}	StudentListResponse
// @Failure		500	{object}	StudentListResponse
// @Param			id	path		uint	true	"ID of the class"
// @Router			/v1/classes/{id}/students [get]
func GetClassStudents(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), StudentListResponse{Error: &e})
		return
	}

	var class models.Class
	err := models.DB.First(&class, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentListResponse{Error: &e})
		return
	}

	students, err := class.Students(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentListResponse{Error: &e})
		return
	}

	data := make([]Student, 0, len(students))
	for _, student := range students {
		data = append(data, newStudent(c, student))
	}

	c.JSON(http.StatusOK, StudentListResponse{Data: data})
}

// @Summary		Enroll student
// @Description	Enrolls a student in the class. Enrolling a student twice has no effect.
// @Tags			Classes
// @Produce		json
// @Success		204
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			id			path		uint				true	"ID of the class"
// @Param			enrollment	body		EnrollmentEditable	true	"Enrollment"
// @Router			/v1/classes/{id}/students [post]
func EnrollStudent(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var class models.Class
	err := models.DB.First(&class, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var editable EnrollmentEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = class.Enroll(models.DB, editable.StudentID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Unenroll student
// @Description	Removes a student from the class
// @Tags			Classes
// @Success		204
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			id			path	uint	true	"ID of the class"
// @Param			studentID	path	uint	true	"ID of the student"
// @Router			/v1/classes/{id}/students/{studentID} [delete]
func UnenrollStudent(c *gin.Context) {
	var uri struct {
		ID        uint `uri:"id" binding:"required"`
		StudentID uint `uri:"studentID" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var class models.Class
	err := models.DB.First(&class, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = class.Unenroll(models.DB, uri.StudentID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
