//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Course is a course owned by a teacher on the attendance service.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      int64  `json:"userId"`
}

// AddCourse is the request body for POST /api/course/create.
type AddCourse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateCourse is the request body for PUT /api/course/update.
type UpdateCourse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Group is a student group attached to a course.
type Group struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	CourseID int64  `json:"courseId"`
}

// AddGroup is the request body for POST /api/group/addGroup.
type AddGroup struct {
	Title    string `json:"title"`
	CourseID int64  `json:"courseId"`
}

// Student is a student enrolled in a group. FullName is denormalized by the
// attendance service from the linked user account.
type Student struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	UserID      int64  `json:"userId"`
	GroupID     int64  `json:"groupId"`
}

// AddStudent is the request body for POST /api/student/addStudent.
type AddStudent struct {
	PhoneNumber string `json:"phoneNumber"`
	GroupID     int64  `json:"groupId"`
}

// UpdateStudent is the request body for PUT /api/student/editStudent.
type UpdateStudent struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phoneNumber"`
	UserID      int64  `json:"userId"`
	GroupID     int64  `json:"groupId"`
}

// StudentCourseGroup pairs one of the student's courses with the groups the
// student belongs to in it (GET /api/student/seeCourses).
type StudentCourseGroup struct {
	Course Course  `json:"course"`
	Groups []Group `json:"groups"`
}
