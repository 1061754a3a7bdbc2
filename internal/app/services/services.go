package services

// Services defined in this package:
// - AuthService: credential checks and token issuance
// - StudentService: student records, schedules, GPAs and memberships
// - MaintenanceService: work orders, staff hours and tool attachments
// - ToolService: tool inventory
// - CampusService: clubs, instruments, rentals, classrooms and reservations
// - CollegeService: colleges, rankings and advisors
// - MetricsService: derived reports for the president and dean views
