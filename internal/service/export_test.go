package service

import "go.uber.org/zap"

// Accessors for the external service_test package, which cannot reach
// the unexported fields directly.

func (s *ShiftService) Store() ShiftRepository { return s.store }

func (s *ShiftService) Logger() *zap.Logger { return s.logger }
