package main

// ProgressPrinter exposes progressPrinter to tests.
var ProgressPrinter = progressPrinter
