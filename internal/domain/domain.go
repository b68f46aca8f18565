package domain

import (
	"github.com/aartrack/aar-backend/internal/domain/review"
	"github.com/aartrack/aar-backend/internal/domain/user"
)

const (
	CourseStatusNotStarted = review.CourseStatusNotStarted
	CourseStatusInProgress = review.CourseStatusInProgress
	CourseStatusCompleted  = review.CourseStatusCompleted

	PriorityLow    = review.PriorityLow
	PriorityMedium = review.PriorityMedium
	PriorityHigh   = review.PriorityHigh
)

type User = user.User
type UserPublic = user.Public

type Course = review.Course
type KnowledgePoint = review.KnowledgePoint
type ActionItem = review.ActionItem
type ReviewLog = review.ReviewLog
type Tag = review.Tag
type CourseTag = review.CourseTag
