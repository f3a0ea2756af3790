package controllers

import (
	"HRAS/handlers"
	"HRAS/middlewares"
	"HRAS/models"

	"github.com/gin-gonic/gin"
)

// SetupCoreRoutes registers the hospital, patient, resource, assignment,
// shift, lab report and AI routes. Everything here requires a valid user
// token; role gates narrow the mutating surfaces.
func SetupCoreRoutes(
	router *gin.Engine,
	hospitalHandler *handlers.HospitalHandler,
	patientHandler *handlers.PatientHandler,
	clinicalHandler *handlers.ClinicalHandler,
	noteHandler *handlers.NoteHandler,
	resourceHandler *handlers.ResourceHandler,
	assignmentHandler *handlers.AssignmentHandler,
	shiftHandler *handlers.ShiftHandler,
	labReportHandler *handlers.LabReportHandler,
	aiHandler *handlers.AIHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	authed := router.Group("/", middlewares.TokenAuthMiddleware())

	// Hospitals: everyone reads their scope, admins manage.
	authed.GET("/hospitals", hospitalHandler.List)
	authed.GET("/hospitals/:id", hospitalHandler.Get)
	hospitalAdmin := authed.Group("/hospitals", middlewares.RoleAuthMiddleware(models.RoleAdmin))
	{
		hospitalAdmin.POST("", hospitalHandler.Create)
		hospitalAdmin.PUT("/:id", hospitalHandler.Update)
		hospitalAdmin.DELETE("/:id", hospitalHandler.Delete)
	}

	// Resources: scoped reads for everyone, admin mutations.
	authed.GET("/resources", resourceHandler.List)
	authed.GET("/resources/available", resourceHandler.ListAvailable)
	authed.GET("/resources/:id", resourceHandler.Get)
	resourceAdmin := authed.Group("/resources", middlewares.RoleAuthMiddleware(models.RoleAdmin))
	{
		resourceAdmin.POST("", resourceHandler.Create)
		resourceAdmin.PUT("/:id", resourceHandler.Update)
		resourceAdmin.DELETE("/:id", resourceHandler.Delete)
	}

	// Patients: visibility and edit rules live in the service; the router
	// only gates the unambiguous cases.
	authed.GET("/patients", patientHandler.List)
	authed.GET("/patients/:id", patientHandler.Get)
	authed.POST("/patients",
		middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleReceptionist),
		patientHandler.Create)
	authed.PUT("/patients/:id",
		middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleDoctor, models.RoleNurse),
		patientHandler.Update)
	authed.DELETE("/patients/:id",
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
		patientHandler.Delete)
	authed.POST("/patients/:id/reassign",
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
		patientHandler.Reassign)

	// Clinical subresources under a patient.
	authed.GET("/patients/:id/observations", clinicalHandler.ListObservations)
	authed.POST("/patients/:id/observations",
		middlewares.RoleAuthMiddleware(models.RoleNurse),
		clinicalHandler.CreateObservation)
	authed.GET("/patients/:id/diagnoses", clinicalHandler.ListDiagnoses)
	authed.POST("/patients/:id/diagnoses",
		middlewares.RoleAuthMiddleware(models.RoleDoctor),
		clinicalHandler.CreateDiagnosis)
	authed.GET("/patients/:id/tests", clinicalHandler.ListTestOrders)
	authed.POST("/patients/:id/tests",
		middlewares.RoleAuthMiddleware(models.RoleDoctor),
		clinicalHandler.CreateTestOrder)
	authed.PUT("/patients/:id/tests/:orderId/status",
		middlewares.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin),
		clinicalHandler.AdvanceTestOrder)
	authed.GET("/patients/:id/prescriptions", clinicalHandler.ListPrescriptions)
	authed.POST("/patients/:id/prescriptions",
		middlewares.RoleAuthMiddleware(models.RoleDoctor),
		clinicalHandler.CreatePrescription)

	// Notes: receptionists are denied the whole surface.
	notes := authed.Group("/patients/:id/notes",
		middlewares.DenyRolesMiddleware("Receptionists cannot access patient notes", models.RoleReceptionist))
	{
		notes.GET("", noteHandler.ListByPatient)
		notes.POST("", noteHandler.Create)
		notes.PUT("/:noteId", noteHandler.Update)
		notes.DELETE("/:noteId", noteHandler.Delete)
	}

	// Lab reports: nurses are denied the whole surface.
	labReports := authed.Group("/lab_reports",
		middlewares.DenyRolesMiddleware("Nurses cannot access lab reports", models.RoleNurse, models.RoleReceptionist))
	{
		labReports.GET("", labReportHandler.List)
		labReports.GET("/:id", labReportHandler.Get)
		labReports.POST("", labReportHandler.Create)
		labReports.DELETE("/:id", labReportHandler.Delete)
	}
	authed.GET("/patients/:id/lab_reports",
		middlewares.DenyRolesMiddleware("Nurses cannot access lab reports", models.RoleNurse, models.RoleReceptionist),
		labReportHandler.ListByPatient)

	// Assignments are read-only; rows are written by the engine and the
	// admin override. Receptionists are denied.
	assignments := authed.Group("/assignments",
		middlewares.DenyRolesMiddleware("Receptionists cannot access assignments", models.RoleReceptionist))
	{
		assignments.GET("", assignmentHandler.List)
		assignments.GET("/:id", assignmentHandler.Get)
	}

	// Shifts: scoped reads, admin/receptionist mutations enforced in service.
	authed.GET("/shifts", shiftHandler.List)
	authed.GET("/shifts/:id", shiftHandler.Get)
	authed.POST("/shifts", shiftHandler.Create)
	authed.PUT("/shifts/:id", shiftHandler.Update)
	authed.DELETE("/shifts/:id", shiftHandler.Delete)

	// AI assistance.
	authed.POST("/ai/triage", aiHandler.Triage)
	authed.POST("/ai/chat", aiHandler.Chat)
	authed.GET("/ai/status", aiHandler.Status)

	// Analytics: admin only.
	authed.GET("/analytics/average-assignment-time",
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
		analyticsHandler.AverageAssignmentTime)
}
