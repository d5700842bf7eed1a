package repository

import (
	appointmentRepo "concierge/database/repository/appointment"
	contactRepo "concierge/database/repository/contact"
	serviceRepo "concierge/database/repository/service"
	traceRepo "concierge/database/repository/trace"
)

// Re-export the ContactRepository interface and constructor.
type ContactRepository = contactRepo.ContactRepository

type SlotWindow = contactRepo.SlotWindow

var NewMongoContactRepo = contactRepo.NewMongoContactRepo

// Re-export the ServiceRepository interface and constructor.
type ServiceRepository = serviceRepo.ServiceRepository

var NewMongoServiceRepo = serviceRepo.NewMongoServiceRepo

// Re-export the AppointmentRepository interface and constructor.
type AppointmentRepository = appointmentRepo.AppointmentRepository

var NewMongoAppointmentRepo = appointmentRepo.NewMongoAppointmentRepo

// Re-export the TraceRepository interface and constructor.
type TraceRepository = traceRepo.TraceRepository

var NewMongoTraceRepo = traceRepo.NewMongoTraceRepo
