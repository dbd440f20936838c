package v1

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quran-branch-manager/backend/internal/httperror"
	"github.com/quran-branch-manager/backend/internal/httputil"
	"github.com/quran-branch-manager/backend/internal/models"
)

// TeacherEditable represents all values for a teacher that can be
// updated by the user
type TeacherEditable struct {
	Name              string     `json:"name" example:"فاطمة الزهراء"`
	NationalID        string     `json:"nationalId"`
	ContactInfo       string     `json:"contactInfo" example:"+216 98 765 432"`
	Email             string     `json:"email"`
	Address           string     `json:"address"`
	DateOfBirth       *time.Time `json:"dateOfBirth"`
	Gender            string     `json:"gender" example:"female"`
	EducationalLevel  string     `json:"educationalLevel"`
	Specialization    string     `json:"specialization" example:"القراءات"`
	YearsOfExperience int        `json:"yearsOfExperience" example:"7"`
	Availability      string     `json:"availability"`
	Notes             string     `json:"notes"`
}

func (editable TeacherEditable) model() models.Teacher {
	return models.Teacher{
		Name:              editable.Name,
		NationalID:        editable.NationalID,
		ContactInfo:       editable.ContactInfo,
		Email:             editable.Email,
		Address:           editable.Address,
		DateOfBirth:       editable.DateOfBirth,
		Gender:            editable.Gender,
		EducationalLevel:  editable.EducationalLevel,
		Specialization:    editable.Specialization,
		YearsOfExperience: editable.YearsOfExperience,
		Availability:      editable.Availability,
		Notes:             editable.Notes,
	}
}

type TeacherLinks struct {
	Self string `json:"self" example:"https://example.com/v1/teachers/7"`
}

type Teacher struct {
	models.Teacher
	Links TeacherLinks `json:"links"`
}

func newTeacher(c *gin.Context, model models.Teacher) Teacher {
	url := c.GetString(string(models.DBContextURL))

	return Teacher{
		Teacher: model,
		Links: TeacherLinks{
			Self: fmt.Sprintf("%s/v1/teachers/%d", url, model.ID),
		},
	}
}

type TeacherResponse struct {
	Error *string  `json:"error"` // The error, if one occurred
	Data  *Teacher `json:"data"`  // The teacher
}

type TeacherListResponse struct {
	Error *string   `json:"error"` // The error, if one occurred
	Data  []Teacher `json:"data"`  // List of teachers
}

type TeacherQueryFilter struct {
	Name           string `form:"name" filterField:"false"` // Fuzzy filter by name
	Specialization string `form:"specialization"`           // Filter by specialization
	Gender         string `form:"gender"`                   // Filter by gender
}

func (f TeacherQueryFilter) model() models.Teacher {
	return models.Teacher{
		Specialization: f.Specialization,
		Gender:         f.Gender,
	}
}

// RegisterTeacherRoutes registers the routes for teachers with
// the RouterGroup that is passed.
func RegisterTeacherRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTeacherList)
	r.GET("", GetTeachers)
	r.POST("", CreateTeacher)

	r.OPTIONS("/:id", OptionsTeacherDetail)
	r.GET("/:id", GetTeacher)
	r.PATCH("/:id", UpdateTeacher)
	r.DELETE("/:id", DeleteTeacher)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teachers
// @Success		204
// @Router			/v1/teachers [options]
func OptionsTeacherList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teachers
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the teacher"
// @Router			/v1/teachers/{id} [options]
func OptionsTeacherDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Teacher{})
}

// @Summary		Create teacher
// @Description	Creates a new teacher
// @Tags			Teachers
// @Produce		json
// @Success		201		{object}	TeacherResponse
// @Failure		400		{object}	TeacherResponse
// @Failure		500		{object}	TeacherResponse
// @Param			teacher	body		TeacherEditable	true	"Teacher"
// @Router			/v1/teachers [post]
func CreateTeacher(c *gin.Context) {
	var editable TeacherEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeacherResponse{Error: &e})
		return
	}

	teacher := editable.model()

	err = models.DB.Create(&teacher).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeacherResponse{Error: &e})
		return
	}

	data := newTeacher(c, teacher)
	c.JSON(http.StatusCreated, TeacherResponse{Data: &data})
}

// @Summary		List teachers
// @Description	Returns a list of teachers, sorted by name with Arabic collation
// @Tags			Teachers
// @Produce		json
// @Success		200	{object}	TeacherListResponse
// @Failure		400	{object}	TeacherListResponse
// @Failure		500	{object}	TeacherListResponse
// @Router			/v1/teachers [get]
// @Param			name			query	string	false	"Fuzzy filter by name"
// @Param			specialization	query	string	false	"Filter by specialization"
// @Param			gender			query	string	false	"Filter by gender"
func GetTeachers(c *gin.Context) {
	var filter TeacherQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TeacherListResponse{Error: &s})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.Where(&where, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	}

	var teachers []models.Teacher
	err := q.Find(&teachers).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeacherListResponse{Error: &e})
		return
	}

	sort.Slice(teachers, func(i, j int) bool {
		return arabicCollator.CompareString(teachers[i].Name, teachers[j].Name) < 0
	})

	data := make([]Teacher, 0, len(teachers))
	for _, teacher := range teachers {
		data = append(data, newTeacher(c, teacher))
	}

	c.JSON(http.StatusOK, TeacherListResponse{Data: data})
}

// @Summary		Get teacher
// @Description	Returns a specific teacher
// @Tags			Teachers
// @Produce		json
// @Success		200	{object}	TeacherResponse
// @Failure		400	{object}	TeacherResponse
// @Failure		404	{object}	TeacherResponse
// @Failure		500	{object}	TeacherResponse
// @Param			id	path		uint	true	"ID of the teacher"
// @Router			/v1/teachers/{id} [get]
func GetTeacher(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), TeacherResponse{Error: &e})
		return
	}

	var teacher models.Teacher
	err := models.DB.First(&teacher, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeacherResponse{Error: &e})
		return
	}

	data := newTeacher(c, teacher)
	c.JSON(http.StatusOK, TeacherResponse{Data: &data})
}

// @Summary		Update teacher
// @Description	Updates a teacher. Only values to be updated need to be specified.
// @Tags			Teachers
// @Produce		json
// @Success		200		{object}	TeacherResponse
// @Failure		400		{object}	TeacherResponse
// @Failure		404		{object}	TeacherResponse
// @Failure		500		{object}	TeacherResponse
// @Param			id		path		uint			true	"ID of the teacher"
// @Param			teacher	body		TeacherEditable	true	"Teacher"
// @Router			/v1/teachers/{id} [patch]
func UpdateTeacher(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), TeacherResponse{Error: &e})
		return
	}

	var teacher models.Teacher
	err := models.DB.First(&teacher, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeacherResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TeacherEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeacherResponse{Error: &e})
		return
	}

	var data TeacherEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeacherResponse{Error: &e})
		return
	}

	err = models.DB.Model(&teacher).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeacherResponse{Error: &e})
		return
	}

	d := newTeacher(c, teacher)
	c.JSON(http.StatusOK, TeacherResponse{Data: &d})
}

// @Summary		Delete teacher
// @Description	Deletes a teacher
// @Tags			Teachers
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the teacher"
// @Router			/v1/teachers/{id} [delete]
func DeleteTeacher(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var teacher models.Teacher
	err := models.DB.First(&teacher, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&teacher).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
