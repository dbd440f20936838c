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
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// arabicCollator sorts names the way an Arabic speaker expects, which
// byte-wise UTF-8 ordering does not.
var arabicCollator = collate.New(language.Arabic)

// StudentEditable represents all values for a student that can be
// updated by the user
type StudentEditable struct {
	Name                     string     `json:"name" example:"أحمد بن صالح"`
	DateOfBirth              *time.Time `json:"dateOfBirth" example:"2012-03-04T00:00:00Z"`
	Gender                   string     `json:"gender" example:"male"`
	Address                  string     `json:"address"`
	ContactInfo              string     `json:"contactInfo" example:"+216 20 123 456"`
	Email                    string     `json:"email" example:"parent@example.com"`
	EnrollmentDate           time.Time  `json:"enrollmentDate" example:"2023-09-15T00:00:00Z"`
	Status                   string     `json:"status" example:"active" default:"active"`
	MemorizationLevel        string     `json:"memorizationLevel" example:"جزء عم"`
	Notes                    string     `json:"notes"`
	ParentName               string     `json:"parentName"`
	ParentContact            string     `json:"parentContact"`
	GuardianRelation         string     `json:"guardianRelation" example:"father"`
	EmergencyContactName     string     `json:"emergencyContactName"`
	EmergencyContactPhone    string     `json:"emergencyContactPhone"`
	HealthConditions         string     `json:"healthConditions"`
	NationalID               string     `json:"nationalId"`
	SchoolName               string     `json:"schoolName"`
	GradeLevel               string     `json:"gradeLevel"`
	EducationalLevel         string     `json:"educationalLevel"`
	FinancialAssistanceNotes string     `json:"financialAssistanceNotes"`
}

func (editable StudentEditable) model() models.Student {
	return models.Student{
		Name:                     editable.Name,
		DateOfBirth:              editable.DateOfBirth,
		Gender:                   editable.Gender,
		Address:                  editable.Address,
		ContactInfo:              editable.ContactInfo,
		Email:                    editable.Email,
		EnrollmentDate:           editable.EnrollmentDate,
		Status:                   editable.Status,
		MemorizationLevel:        editable.MemorizationLevel,
		Notes:                    editable.Notes,
		ParentName:               editable.ParentName,
		ParentContact:            editable.ParentContact,
		GuardianRelation:         editable.GuardianRelation,
		EmergencyContactName:     editable.EmergencyContactName,
		EmergencyContactPhone:    editable.EmergencyContactPhone,
		HealthConditions:         editable.HealthConditions,
		NationalID:               editable.NationalID,
		SchoolName:               editable.SchoolName,
		GradeLevel:               editable.GradeLevel,
		EducationalLevel:         editable.EducationalLevel,
		FinancialAssistanceNotes: editable.FinancialAssistanceNotes,
	}
}

type StudentLinks struct {
	Self    string `json:"self" example:"https://example.com/v1/students/42"`
	Classes string `json:"classes" example:"https://example.com/v1/students/42/classes"`
}

type Student struct {
	models.Student
	Links StudentLinks `json:"links"`
}

func newStudent(c *gin.Context, model models.Student) Student {
	url := c.GetString(string(models.DBContextURL))

	return Student{
		Student: model,
		Links: StudentLinks{
			Self:    fmt.Sprintf("%s/v1/students/%d", url, model.ID),
			Classes: fmt.Sprintf("%s/v1/students/%d/classes", url, model.ID),
		},
	}
}

type StudentResponse struct {
	Error *string  `json:"error"` // The error, if one occurred
	Data  *Student `json:"data"`  // The student
}

type StudentListResponse struct {
	Error *string   `json:"error"` // The error, if one occurred
	Data  []Student `json:"data"`  // List of students
}

type StudentQueryFilter struct {
	Name   string `form:"name" filterField:"false"` // Fuzzy filter by name
	Status string `form:"status"`                   // Filter by status, e.g. active
	Gender string `form:"gender"`                   // Filter by gender
}

func (f StudentQueryFilter) model() models.Student {
	return models.Student{
		Status: f.Status,
		Gender: f.Gender,
	}
}

// RegisterStudentRoutes registers the routes for students with
// the RouterGroup that is passed.
func RegisterStudentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStudentList)
	r.GET("", GetStudents)
	r.POST("", CreateStudent)

	r.OPTIONS("/:id", OptionsStudentDetail)
	r.GET("/:id", GetStudent)
	r.PATCH("/:id", UpdateStudent)
	r.DELETE("/:id", DeleteStudent)

	r.GET("/:id/classes", GetStudentClasses)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Students
// @Success		204
// @Router			/v1/students [options]
func OptionsStudentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Students
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the student"
// @Router			/v1/students/{id} [options]
func OptionsStudentDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Student{})
}

// @Summary		Create student
// @Description	Creates a new student
// @Tags			Students
// @Produce		json
// @Success		201		{object}	StudentResponse
// @Failure		400		{object}	StudentResponse
// @Failure		500		{object}	StudentResponse
// @Param			student	body		StudentEditable	true	"Student"
// @Router			/v1/students [post]
func CreateStudent(c *gin.Context) {
	var editable StudentEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentResponse{Error: &e})
		return
	}

	student := editable.model()

	err = models.DB.Create(&student).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentResponse{Error: &e})
		return
	}

	data := newStudent(c, student)
	c.JSON(http.StatusCreated, StudentResponse{Data: &data})
}

// @Summary		List students
// @Description	Returns a list of students, sorted by name with Arabic collation
// @Tags			Students
// @Produce		json
// @Success		200	{object}	StudentListResponse
// @Failure		400	{object}	StudentListResponse
// @Failure		500	{object}	StudentListResponse
// @Router			/v1/students [get]
// @Param			name	query	string	false	"Fuzzy filter by name"
// @Param			status	query	string	false	"Filter by status, e.g. active"
// @Param			gender	query	string	false	"Filter by gender"
func GetStudents(c *gin.Context) {
	var filter StudentQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, StudentListResponse{Error: &s})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.Where(&where, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	}

	var students []models.Student
	err := q.Find(&students).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentListResponse{Error: &e})
		return
	}

	sort.Slice(students, func(i, j int) bool {
		return arabicCollator.CompareString(students[i].Name, students[j].Name) < 0
	})

	data := make([]Student, 0, len(students))
	for _, student := range students {
		data = append(data, newStudent(c, student))
	}

	c.JSON(http.StatusOK, StudentListResponse{Data: data})
}

// @Summary		Get student
// @Description	Returns a specific student
// @Tags			Students
// @Produce		json
// @Success		200	{object}	StudentResponse
// @Failure		400	{object}	StudentResponse
// @Failure		404	{object}	StudentResponse
// @Failure		500	{object}	StudentResponse
// @Param			id	path		uint	true	"ID of the student"
// @Router			/v1/students/{id} [get]
func GetStudent(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), StudentResponse{Error: &e})
		return
	}

	var student models.Student
	err := models.DB.First(&student, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentResponse{Error: &e})
		return
	}

	data := newStudent(c, student)
	c.JSON(http.StatusOK, StudentResponse{Data: &data})
}

// @Summary		Get student classes
// @Description	Returns the classes the student is enrolled in
// @Tags			Students
// @Produce		json
// @Success		200	{object}	ClassListResponse
// @Failure		400	{object}	ClassListResponse
// @Failure		404	{object}	ClassListResponse
// @Failure		500	{object}	ClassListResponse
// @Param			id	path		uint	true	"ID of the student"
// @Router			/v1/students/{id}/classes [get]
func GetStudentClasses(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), ClassListResponse{Error: &e})
		return
	}

	var student models.Student
	err := models.DB.First(&student, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClassListResponse{Error: &e})
		return
	}

	classes, err := student.Classes(models.DB)
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

// @Summary		Update student
// @Description	Updates a student. Only values to be updated need to be specified.
// @Tags			Students
// @Produce		json
// @Success		200		{object}	StudentResponse
// @Failure		400		{object}	StudentResponse
// @Failure		404		{object}	StudentResponse
// @Failure		500		{object}	StudentResponse
// @Param			id		path		uint			true	"ID of the student"
// @Param			student	body		StudentEditable	true	"Student"
// @Router			/v1/students/{id} [patch]
func UpdateStudent(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), StudentResponse{Error: &e})
		return
	}

	var student models.Student
	err := models.DB.First(&student, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, StudentEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentResponse{Error: &e})
		return
	}

	var data StudentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentResponse{Error: &e})
		return
	}

	err = models.DB.Model(&student).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StudentResponse{Error: &e})
		return
	}

	d := newStudent(c, student)
	c.JSON(http.StatusOK, StudentResponse{Data: &d})
}

// @Summary		Delete student
// @Description	Deletes a student
// @Tags			Students
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the student"
// @Router			/v1/students/{id} [delete]
func DeleteStudent(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var student models.Student
	err := models.DB.First(&student, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&student).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
