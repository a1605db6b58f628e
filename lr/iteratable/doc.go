/*
Package iteratable implements ordered container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around scanners, parsers, etc. These kinds of algorithms are often more straightforward
to describe as set constructions and operations.

Sets keep their elements sorted by a comparator, so iterating over a set
always yields the same sequence for the same content. Grammar analysis relies
on this to produce reproducible state numbering.

Unusually, Add, Union and Remove are destructive! Use Copy if the receiver
has to be preserved.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package iteratable
