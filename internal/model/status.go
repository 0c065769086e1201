package model

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

var PaymentStatuses = []string{
	string(PaymentStatusPending),
	string(PaymentStatusPaid),
	string(PaymentStatusFailed),
	string(PaymentStatusRefunded),
}

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
	VerificationStatusExpired  VerificationStatus = "expired"
)

var VerificationStatuses = []string{
	string(VerificationStatusPending),
	string(VerificationStatusApproved),
	string(VerificationStatusRejected),
	string(VerificationStatusExpired),
}

type SessionStatus string

const (
	SessionStatusActive  SessionStatus = "active"
	SessionStatusEnded   SessionStatus = "ended"
	SessionStatusRevoked SessionStatus = "revoked"
)

var SessionStatuses = []string{
	string(SessionStatusActive),
	string(SessionStatusEnded),
	string(SessionStatusRevoked),
}

// Closed reports whether a session in this status has finished.
func (s SessionStatus) Closed() bool {
	return s == SessionStatusEnded || s == SessionStatusRevoked
}
