/*
Package queue provides queues of pending ctr statistics computations.

Tasks are identified by their canonical ctr key, so pushing the same
combination twice, however it was assembled, schedules a single
computation.
*/
package queue
