// Package rpkg extracts R package sources bundled inside Spark package
// jars and installs them with R CMD INSTALL.
package rpkg

// RJarEntries is the conventional location of R package sources inside a jar.
const RJarEntries = "R/pkg"

// RJarDoc is printed when a bundled R package fails to build, so the
// failure can be diagnosed from the jar layout alone.
const RJarDoc = `In order for Spark to build R packages that are part of Spark Packages, there are
a few requirements. The R source code must be shipped in a jar, with additional
Java/Scala classes. The jar must be in the following format:
  1- The Manifest (META-INF/MANIFEST.MF) must contain the entry:
       Spark-HasRPackage: true
  2- The standard R package layout must be followed under the folder R/pkg inside
     the jar, e.g. R/pkg/DESCRIPTION, R/pkg/NAMESPACE, R/pkg/R/...
  3- The package must be installable with: R CMD INSTALL -l <libDir> R/pkg`
