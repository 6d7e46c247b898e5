// Package queue provides the heaps behind the bounded percentile search.
package queue
