/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */
package gollowds

import (
	"log"
)

type HeapOption struct {
	logger   *log.Logger
	capacity *int
}

// unbounded heap with no logger
func NewHeapOption() *HeapOption {
	return &HeapOption{
		logger:   nil,
		capacity: nil,
	}
}

// Bounds the number of elements the heap may hold, inserts past it are rejected
func (i *HeapOption) SetCapacity(capacity int) {
	if capacity < 0 {
		panic("heap capacity must not be negative")
	}
	i.capacity = &capacity
}

func (i *HeapOption) SetUnbounded() {
	i.capacity = nil
}

// Rejected inserts are reported to logger
func (i *HeapOption) SetLogger(logger *log.Logger) {
	i.logger = logger
}

// returns the capacity and whether one is set
func (i *HeapOption) GetCapacity() (int, bool) {
	if i.capacity == nil {
		return 0, false
	}
	return *i.capacity, true
}
