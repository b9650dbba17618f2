// cpu8080_interrupt.go - pending-interrupt queue

package main

// RequestInterrupt enqueues a one-byte RST opcode (0xC7, 0xCF, 0xD7, ...) to
// be delivered the next time Cycle finds interrupts enabled. Delivery order
// is strict FIFO: the arcade shell alternates mid-frame and VBlank RSTs and
// expects them serviced in the order they were raised, not reversed.
func (c *CPU8080) RequestInterrupt(rstOpcode byte) {
	c.interruptQueue = append(c.interruptQueue, rstOpcode)
}

// PendingInterrupts reports the current queue depth, mostly useful for
// tests and diagnostics.
func (c *CPU8080) PendingInterrupts() int {
	return len(c.interruptQueue)
}

// serviceInterrupt pops the oldest queued opcode, clears the
// interrupt-enable flag, and executes the opcode as if it had been fetched
// normally (real
// 8080 hardware disables interrupts on entry; the handler re-enables them
// with EI before RET if it wants nesting).
func (c *CPU8080) serviceInterrupt() {
	opcode := c.interruptQueue[0]
	c.interruptQueue = c.interruptQueue[1:]
	c.InterruptsEnabled = false
	c.execute(opcode)
}
