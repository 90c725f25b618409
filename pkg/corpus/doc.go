/*
Package corpus turns raw text files into clean training sentences.

A Processor enumerates the .txt files of a directory, decodes them with a
Latin-1 fallback, normalizes whitespace and punctuation, segments the text
into sentences while protecting abbreviations and decimal numbers, and
applies a quality filter before handing the surviving sentences over as
Books. Books with too few good sentences are discarded whole.

The package also bundles a small sample corpus so an empty deployment can
bootstrap itself before real books are provided.
*/
package corpus
